// Package snipcheck provides the command-line interface for the snipcheck
// tool. It configures subcommands, parses flags, and executes the selected
// command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/snipcheck/snipcheck/cmd/snipcheck"
//	func main() { snipcheck.Execute() }
package snipcheck
