package engine

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/snipcheck/snipcheck/internal/ignore"
)

var defaultDirExcludes = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	".idea":        true,
	".vscode":      true,
	"node_modules": true,
	"vendor":       true,
	"target":       true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
}

func isDefaultDirExcluded(name string) bool { return defaultDirExcludes[name] }

// collect walks root and returns the paths of files selected by the include
// globs, minus exclusions, sorted for deterministic processing. Unlike a
// best-effort walker, traversal errors abort: a tree this tool cannot fully
// read cannot be verified.
func collect(root string, includes, excludes []string, maxBytes int64, useDefaultExcludes bool, ign ignore.Matcher) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", p, err)
		}
		if d.IsDir() {
			if p != root && useDefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !matchAnyGlob(rel, includes) {
			return nil
		}
		if matchAnyGlob(rel, excludes) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		if maxBytes > 0 {
			if info, err := d.Info(); err == nil && info.Size() > maxBytes {
				return nil
			}
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// matchAnyGlob matches a slash-separated relative path against doublestar
// globs, trying the full path and the basename.
func matchAnyGlob(rel string, globs []string) bool {
	for _, g := range globs {
		g = strings.TrimPrefix(g, "./")
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}

// looksBinary reports whether content sniffs as binary (NUL byte in the first
// 800 bytes). Binary source files are skipped rather than matched.
func looksBinary(b []byte) bool {
	n := 800
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
