// Package pattern compiles the deduplicated example list into one combined
// matcher: an alternation with exactly one capture group per example, where
// group i matches example i's comment-prefixed form.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/snipcheck/snipcheck/internal/types"
)

// DefaultMarkers are the accepted line-comment prefixes for embedded
// examples: the doc-comment marker and its module-level variant.
func DefaultMarkers() []string {
	return []string{"///", "//!"}
}

// Matcher is the compiled combined pattern. The group index to example index
// mapping lives only here; callers never re-derive it.
type Matcher struct {
	re *regexp.Regexp
	n  int
}

// Compile builds the combined matcher for the ordered example list. Each
// example line must appear prefixed by one of the markers plus an optional
// single space, with a line break between consecutive lines, so the example
// has to occur as a contiguous run of comment lines in exact order. Example
// text is quoted; characters that are meaningful in regexp syntax match only
// themselves. An empty list yields a matcher that can never match.
func Compile(examples []types.Example, markers []string) (*Matcher, error) {
	if len(examples) == 0 {
		return &Matcher{}, nil
	}
	if len(markers) == 0 {
		markers = DefaultMarkers()
	}
	quoted := make([]string, len(markers))
	for i, m := range markers {
		quoted[i] = regexp.QuoteMeta(m)
	}
	prefix := "(?:" + strings.Join(quoted, "|") + ")[ ]?"

	subs := make([]string, len(examples))
	for i, ex := range examples {
		lines := ex.Lines()
		parts := make([]string, len(lines))
		for j, line := range lines {
			parts[j] = prefix + regexp.QuoteMeta(line)
		}
		subs[i] = "(" + strings.Join(parts, `\n`) + ")"
	}
	re, err := regexp.Compile(strings.Join(subs, "|"))
	if err != nil {
		return nil, fmt.Errorf("compile combined pattern: %w", err)
	}
	return &Matcher{re: re, n: len(examples)}, nil
}

// Groups returns the number of capture groups, one per example.
func (m *Matcher) Groups() int { return m.n }

// CanMatch reports whether the matcher has anything to evaluate. It is false
// only for the empty working set.
func (m *Matcher) CanMatch() bool { return m.re != nil }

// Scan evaluates the matcher against data and invokes hit with the example
// index of every capture group participating in any match. A file may hit
// multiple examples; the same example may hit more than once.
func (m *Matcher) Scan(data []byte, hit func(i int)) {
	if m.re == nil {
		return
	}
	for _, idx := range m.re.FindAllSubmatchIndex(data, -1) {
		for g := 1; g <= m.n; g++ {
			if idx[2*g] >= 0 {
				hit(g - 1)
			}
		}
	}
}
