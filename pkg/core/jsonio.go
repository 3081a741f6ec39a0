package core

import (
	"encoding/json"
	"io"
)

// MarshalExamples pretty-prints examples as JSON for humans or pipelines.
func MarshalExamples(w io.Writer, examples []Example) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(examples)
}

// UnmarshalExamples decodes examples JSON, useful for ingestion tests.
func UnmarshalExamples(r io.Reader) ([]Example, error) {
	var es []Example
	if err := json.NewDecoder(r).Decode(&es); err != nil {
		return nil, err
	}
	return es, nil
}
