package snipcheck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/snipcheck/snipcheck/internal/config"
	"github.com/snipcheck/snipcheck/internal/engine"
	"github.com/snipcheck/snipcheck/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagPath            string
	flagDocs            string
	flagSource          string
	flagLang            string
	flagMarkers         []string
	flagDocInclude      string
	flagSrcInclude      string
	flagExclude         string
	flagMaxBytes        int64
	flagDefaultExcludes bool
	flagWarnFences      bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify documentation examples against source comments",
		RunE:  runCheck,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "tree holding both docs and sources")
	cmd.Flags().StringVar(&flagDocs, "docs", "", "documentation tree (overrides --path for docs)")
	cmd.Flags().StringVar(&flagSource, "source", "", "source tree (overrides --path for sources)")
	cmd.Flags().StringVar(&flagLang, "lang", "", "fence language tag (default rust)")
	cmd.Flags().StringSliceVar(&flagMarkers, "markers", nil, "accepted comment prefixes (default ///,//!)")
	cmd.Flags().StringVar(&flagDocInclude, "doc-include", "", "comma-separated doc include globs (default **/*.md)")
	cmd.Flags().StringVar(&flagSrcInclude, "src-include", "", "comma-separated source include globs (default derived from --lang)")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs for both trees")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, target, vendor, etc.)")
	cmd.Flags().BoolVar(&flagWarnFences, "warn-fences", true, "warn about unterminated code fences")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	markers := flagMarkers
	if len(markers) == 0 {
		if len(lcfg.Markers) > 0 {
			markers = lcfg.Markers
		} else if len(gcfg.Markers) > 0 {
			markers = gcfg.Markers
		}
	}

	cfg := engine.Config{
		Root:            flagPath,
		DocsRoot:        pickString(flagDocs, lcfg.Docs, gcfg.Docs),
		SourceRoot:      pickString(flagSource, lcfg.Source, gcfg.Source),
		Lang:            pickString(flagLang, lcfg.Lang, gcfg.Lang),
		Markers:         markers,
		DocGlobs:        splitList(pickString(flagDocInclude, lcfg.DocInclude, gcfg.DocInclude)),
		SourceGlobs:     splitList(pickString(flagSrcInclude, lcfg.SrcInclude, gcfg.SrcInclude)),
		Excludes:        splitList(pickString(flagExclude, lcfg.Exclude, gcfg.Exclude)),
		MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:         pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		DefaultExcludes: pickBoolDefault(cmd, "default-excludes", flagDefaultExcludes, lcfg.DefaultExcludes, gcfg.DefaultExcludes),
	}

	machine := flagJSON || flagSARIF
	if !flagQuiet && !machine {
		fmt.Fprintf(os.Stderr, "Checking documentation examples in %s...\n", abs)
	}

	res, err := engine.Run(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("check error: %w", err)
	}

	warn := pickBoolDefault(cmd, "warn-fences", flagWarnFences, lcfg.WarnFences, gcfg.WarnFences)
	if warn && !machine {
		for _, w := range res.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
	}

	noColor := flagNoColor || pickBool(false, lcfg.NoColor, gcfg.NoColor) ||
		!term.IsTerminal(int(os.Stdout.Fd()))
	opts := report.PrintOptions{NoColor: noColor, Lang: cfg.Lang}

	missing := res.Missing

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, version, missing); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, missing); err != nil {
			return fmt.Errorf("json error: %w", err)
		}
	case flagTable:
		opts.Duration = res.Duration
		opts.DocFiles = res.DocFiles
		opts.SourceFiles = res.SourceFiles
		report.PrintTable(os.Stdout, missing, opts)
	default:
		report.PrintText(os.Stdout, missing, opts)
	}

	if !flagQuiet && !machine {
		fmt.Fprintf(os.Stderr, "Checked %d examples across %d doc files and %d source files in %.2fs\n",
			len(res.Examples), res.DocFiles, res.SourceFiles, res.Duration.Seconds())
	}

	if len(res.Missing) > 0 {
		os.Exit(1)
	}
	return nil
}
