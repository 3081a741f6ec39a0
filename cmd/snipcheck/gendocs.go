package snipcheck

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func init() {
	var dir string
	var format string
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Generate CLI reference documentation",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			switch format {
			case "markdown":
				return doc.GenMarkdownTree(rootCmd, dir)
			case "man":
				header := &doc.GenManHeader{Title: "SNIPCHECK", Section: "1"}
				return doc.GenManTree(rootCmd, header, dir)
			default:
				return fmt.Errorf("unknown --format. Supported: markdown, man")
			}
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "docs/cli", "output directory for generated docs")
	cmd.Flags().StringVar(&format, "format", "markdown", "output format: markdown or man")
	rootCmd.AddCommand(cmd)
}
