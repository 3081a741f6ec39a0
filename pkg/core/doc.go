// Package core provides a small, stable facade over snipcheck's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without exposing
// internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: ".", Lang: "rust"}
//	res, err := core.Check(context.Background(), cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalExamples(os.Stdout, res.Missing)
package core
