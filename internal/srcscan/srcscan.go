// Package srcscan records which documentation examples were found embedded in
// source comments, via the monotonic found-flags array.
package srcscan

import (
	"sync/atomic"

	"github.com/snipcheck/snipcheck/internal/pattern"
)

// Flags is the found-flags array: one boolean per example index, initially
// false, only ever set to true. Safe under concurrent writers; setting is an
// idempotent OR per index.
type Flags struct {
	bits []atomic.Bool
}

// NewFlags returns an all-false flag array of size n.
func NewFlags(n int) *Flags {
	return &Flags{bits: make([]atomic.Bool, n)}
}

// Set marks example i as found.
func (f *Flags) Set(i int) { f.bits[i].Store(true) }

// Get reports whether example i was found.
func (f *Flags) Get(i int) bool { return f.bits[i].Load() }

// Len returns the number of tracked examples.
func (f *Flags) Len() int { return len(f.bits) }

// Missing returns the indices still unset, in ascending order.
func (f *Flags) Missing() []int {
	var out []int
	for i := range f.bits {
		if !f.bits[i].Load() {
			out = append(out, i)
		}
	}
	return out
}

// ScanFile evaluates the combined matcher against one source file's full
// contents and flags every example it contains.
func ScanFile(m *pattern.Matcher, flags *Flags, data []byte) {
	m.Scan(data, flags.Set)
}
