// Package engine orchestrates a verification run: discover documentation and
// source files, extract and deduplicate examples, compile the combined
// pattern, scan sources, and collect the missing examples.
package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/snipcheck/snipcheck/internal/docscan"
	"github.com/snipcheck/snipcheck/internal/ignore"
	"github.com/snipcheck/snipcheck/internal/pattern"
	"github.com/snipcheck/snipcheck/internal/srcscan"
	"github.com/snipcheck/snipcheck/internal/types"
	"golang.org/x/sync/errgroup"
)

// Config controls a verification run including scope and performance.
type Config struct {
	Root            string   // tree holding both docs and sources
	DocsRoot        string   // overrides Root for documentation files
	SourceRoot      string   // overrides Root for source files
	Lang            string   // fence language tag (default "rust")
	Markers         []string // accepted comment prefixes (default ///, //!)
	DocGlobs        []string // documentation include globs (default **/*.md)
	SourceGlobs     []string // source include globs (default derived from Lang)
	Excludes        []string // exclude globs applied to both trees
	MaxBytes        int64    // skip files larger than this (0 = no cap)
	Threads         int      // worker count (0 = GOMAXPROCS)
	DefaultExcludes bool     // apply built-in directory exclude list
}

// Result of a verification run.
type Result struct {
	Examples    []types.Example // the full ordered working set
	Missing     []types.Example // examples with no comment-embedded copy
	DocFiles    int
	SourceFiles int
	Duration    time.Duration
	Warnings    []string // unterminated-fence anomalies, sorted
}

var langSourceGlobs = map[string]string{
	"rust":       "**/*.rs",
	"go":         "**/*.go",
	"c":          "**/*.c",
	"cpp":        "**/*.cpp",
	"java":       "**/*.java",
	"python":     "**/*.py",
	"javascript": "**/*.js",
	"typescript": "**/*.ts",
}

func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.DocsRoot == "" {
		c.DocsRoot = c.Root
	}
	if c.SourceRoot == "" {
		c.SourceRoot = c.Root
	}
	if c.Lang == "" {
		c.Lang = "rust"
	}
	if len(c.Markers) == 0 {
		c.Markers = pattern.DefaultMarkers()
	}
	if len(c.DocGlobs) == 0 {
		c.DocGlobs = []string{"**/*.md"}
	}
	if len(c.SourceGlobs) == 0 {
		if g, ok := langSourceGlobs[c.Lang]; ok {
			c.SourceGlobs = []string{g}
		} else {
			c.SourceGlobs = []string{"**/*." + c.Lang}
		}
	}
	if c.Threads <= 0 {
		c.Threads = runtime.GOMAXPROCS(0)
	}
}

// Run executes the two scan phases. Documentation is fully scanned and
// deduplicated before the combined pattern is compiled; only then are sources
// scanned. Any file read failure aborts the whole run: a partially scanned
// tree could hide missing examples.
func Run(ctx context.Context, cfg Config) (Result, error) {
	var res Result
	started := time.Now()
	cfg.applyDefaults()

	ign, err := ignore.Load(filepath.Join(cfg.Root, ".snipcheckignore"))
	if err != nil {
		return res, fmt.Errorf("load ignore file: %w", err)
	}

	docFiles, err := collect(cfg.DocsRoot, cfg.DocGlobs, cfg.Excludes, cfg.MaxBytes, cfg.DefaultExcludes, ign)
	if err != nil {
		return res, err
	}
	res.DocFiles = len(docFiles)

	set := docscan.NewSet()
	ext := docscan.NewExtractor(cfg.Lang)
	var warnMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)
	for _, p := range docFiles {
		p := p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("read %s: %w", p, err)
			}
			blocks, open := ext.Extract(data)
			for _, b := range blocks {
				set.Add(b.Text, p, b.Offset, docscan.LineAt(data, b.Offset))
			}
			for _, off := range open {
				w := fmt.Sprintf("%s:%d: unterminated ```%s fence", p, docscan.LineAt(data, off), cfg.Lang)
				warnMu.Lock()
				res.Warnings = append(res.Warnings, w)
				warnMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	sort.Strings(res.Warnings)

	res.Examples = set.Ordered()
	matcher, err := pattern.Compile(res.Examples, cfg.Markers)
	if err != nil {
		return res, err
	}
	if !matcher.CanMatch() {
		// Nothing documented, nothing to verify.
		res.Duration = time.Since(started)
		return res, nil
	}

	srcFiles, err := collect(cfg.SourceRoot, cfg.SourceGlobs, cfg.Excludes, cfg.MaxBytes, cfg.DefaultExcludes, ign)
	if err != nil {
		return res, err
	}
	res.SourceFiles = len(srcFiles)

	flags := srcscan.NewFlags(matcher.Groups())
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)
	for _, p := range srcFiles {
		p := p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("read %s: %w", p, err)
			}
			if looksBinary(data) {
				return nil
			}
			srcscan.ScanFile(matcher, flags, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	for _, i := range flags.Missing() {
		res.Missing = append(res.Missing, res.Examples[i])
	}
	res.Duration = time.Since(started)
	return res, nil
}
