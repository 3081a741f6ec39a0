// Package report renders verification results as text, table, or SARIF.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/olekukonko/tablewriter"
	"github.com/snipcheck/snipcheck/internal/types"
)

type PrintOptions struct {
	NoColor     bool
	Lang        string
	Duration    time.Duration
	DocFiles    int
	SourceFiles int
}

// PrintText writes the canonical drift report: for each missing example its
// origin path, the example body indented two spaces, and a blank line, then a
// trailing count. The count line and exit status are the contract CI gates
// rely on.
func PrintText(w io.Writer, missing []types.Example, opts PrintOptions) {
	for _, ex := range missing {
		fmt.Fprintf(w, "Example from %s not found:\n", ex.Path)
		body := ex.Text
		if !opts.NoColor {
			body = highlightExample(body, opts.Lang)
		}
		for _, line := range strings.Split(body, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintln(w)
	}
	if len(missing) > 0 {
		fmt.Fprintf(w, "%d missing markdown examples\n", len(missing))
	}
}

// PrintTable writes a one-row-per-example summary table of the missing set.
func PrintTable(w io.Writer, missing []types.Example, opts PrintOptions) {
	if len(missing) == 0 {
		fmt.Fprintln(w, "All documentation examples found ✅")
		printFooter(w, opts)
		return
	}
	tbl := tablewriter.NewTable(w)
	tbl.Header("ID", "LOCATION", "LINES", "PREVIEW")
	for _, ex := range missing {
		lines := ex.Lines()
		preview := lines[0]
		if len(preview) > 48 {
			preview = preview[:45] + "..."
		}
		_ = tbl.Append([]string{ex.ID, fmt.Sprintf("%s:%d", ex.Path, ex.Line), strconv.Itoa(len(lines)), preview})
	}
	_ = tbl.Render()
	fmt.Fprintf(w, "\n%d missing markdown examples\n", len(missing))
	printFooter(w, opts)
}

func printFooter(w io.Writer, opts PrintOptions) {
	if opts.DocFiles == 0 && opts.SourceFiles == 0 && opts.Duration == 0 {
		return
	}
	fmt.Fprintf(w, "Doc files: %d, source files: %d", opts.DocFiles, opts.SourceFiles)
	if opts.Duration > 0 {
		fmt.Fprintf(w, ", %.2fs", opts.Duration.Seconds())
	}
	fmt.Fprintln(w)
}

// highlightExample renders code with terminal colors for the given language.
// Any highlighting failure falls back to the raw text.
func highlightExample(code, lang string) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return code
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return code
	}
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}
