// Package ignore matches paths against .snipcheckignore entries.
package ignore

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher holds the parsed entries of an ignore file. The zero value matches
// nothing.
type Matcher struct {
	patterns []string
}

// Load reads an ignore file. A missing file yields an empty matcher; other
// read failures are returned. Blank lines and '#' comments are skipped.
func Load(p string) (Matcher, error) {
	var m Matcher
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, err
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, nil
}

// Match reports whether the slash-separated relative path is ignored.
// Entries ending in '/' ignore the whole directory subtree; other entries are
// globs matched against the full path and against the basename.
func (m Matcher) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range m.patterns {
		if strings.HasSuffix(p, "/") {
			dir := strings.TrimSuffix(p, "/")
			if rel == dir || strings.HasPrefix(rel, dir+"/") {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, path.Base(rel)); ok {
			return true
		}
	}
	return false
}
