package snipcheck

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagTable   bool
	flagThreads int
	flagNoColor bool
	flagQuiet   bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the snipcheck CLI.
var rootCmd = &cobra.Command{
	Use:           "snipcheck",
	Short:         "Keep documentation examples in sync with source",
	Long:          "Snipcheck extracts fenced code examples from your documentation and verifies each one also exists, comment-prefixed, somewhere in your source tree, so every sample shown to readers is compiled and tested.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the snipcheck CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit missing examples as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "emit a summary table instead of full bodies")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable syntax-highlighted output")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "suppress progress and summary on stderr")
}
