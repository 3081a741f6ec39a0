package report

import (
	"encoding/json"
	"io"

	"github.com/snipcheck/snipcheck/internal/types"
)

// WriteJSON writes the missing examples as a pretty-printed JSON array. A nil
// slice is emitted as an empty array, never `null`.
func WriteJSON(w io.Writer, missing []types.Example) error {
	if missing == nil {
		missing = []types.Example{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(missing)
}
