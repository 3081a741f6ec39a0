// Package docscan extracts fenced code examples from documentation files and
// deduplicates them into the working set the rest of the pipeline consumes.
package docscan

import (
	"bytes"
	"regexp"
	"sort"
	"sync"

	"github.com/snipcheck/snipcheck/internal/types"
)

// Block is a single fenced example found in one documentation file.
type Block struct {
	Text   string // trimmed body of the fence
	Offset int    // byte offset of the fence opener
}

// Extractor pulls fenced code blocks tagged with one language out of
// documentation content. The body match is non-greedy by construction: it
// tolerates single and double backticks inside the block but stops at the
// first closing fence.
type Extractor struct {
	fence  *regexp.Regexp
	opener *regexp.Regexp
}

// NewExtractor builds an extractor for the given fence language tag.
func NewExtractor(lang string) *Extractor {
	q := regexp.QuoteMeta(lang)
	return &Extractor{
		fence:  regexp.MustCompile("(?s)```" + q + "((?:`?`?[^`])*)```"),
		opener: regexp.MustCompile("```" + q),
	}
}

// Extract returns every complete fenced block in data, plus the byte offsets
// of fence openers that never see a closing fence. An unterminated opener
// yields no block; callers surface it as a warning.
func (x *Extractor) Extract(data []byte) (blocks []Block, unterminated []int) {
	matches := x.fence.FindAllSubmatchIndex(data, -1)
	starts := make(map[int]bool, len(matches))
	for _, m := range matches {
		starts[m[0]] = true
		body := data[m[2]:m[3]]
		blocks = append(blocks, Block{
			Text:   string(bytes.TrimSpace(body)),
			Offset: m[0],
		})
	}
	for _, o := range x.opener.FindAllIndex(data, -1) {
		if !starts[o[0]] {
			unterminated = append(unterminated, o[0])
		}
	}
	return blocks, unterminated
}

// LineAt returns the 1-based line number of the byte offset in data.
func LineAt(data []byte, offset int) int {
	if offset > len(data) {
		offset = len(data)
	}
	return 1 + bytes.Count(data[:offset], []byte{'\n'})
}

type location struct {
	path   string
	offset int
	line   int
}

// Set accumulates distinct example texts across concurrently scanned files.
// Duplicate text keeps the smallest (path, offset) pair, so the retained
// location does not depend on how file scans interleave.
type Set struct {
	mu sync.Mutex
	m  map[string]location
}

// NewSet returns an empty example set.
func NewSet() *Set {
	return &Set{m: make(map[string]location)}
}

// Add records one occurrence of text at (path, offset, line). Empty text is
// ignored; a fence with no content is not an example.
func (s *Set) Add(text, path string, offset, line int) {
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.m[text]
	if !ok || path < cur.path || (path == cur.path && offset < cur.offset) {
		s.m[text] = location{path: path, offset: offset, line: line}
	}
}

// Len reports the number of distinct examples collected so far.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

// Ordered returns the deduplicated examples sorted by (path, offset). The
// resulting indices are the capture-group indices of the combined pattern and
// the found-flag indices; this ordering is the sole source of that mapping.
func (s *Set) Ordered() []types.Example {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Example, 0, len(s.m))
	for text, loc := range s.m {
		out = append(out, types.Example{
			ID:     types.Fingerprint(text),
			Path:   loc.path,
			Line:   loc.line,
			Offset: loc.offset,
			Text:   text,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Offset < out[j].Offset
	})
	return out
}
