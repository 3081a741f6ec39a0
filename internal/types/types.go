package types

import (
	"fmt"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
)

// Example is one distinct fenced code example lifted from the documentation
// tree. Identity is the exact trimmed text; Path, Line and Offset point at the
// occurrence that wins deduplication (smallest path, then offset).
type Example struct {
	ID     string `json:"id"`
	Path   string `json:"path"`
	Line   int    `json:"line"`
	Offset int    `json:"offset"`
	Text   string `json:"text"`
}

// Lines splits the example body into its individual lines.
func (e Example) Lines() []string {
	return strings.Split(e.Text, "\n")
}

// Fingerprint returns a stable 16-hex-digit hash of an example's text, used
// as its ID in table and JSON output.
func Fingerprint(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
