// Package pattern decides which files under a scan root take part in the
// count. A Matcher combines a single include glob with caller-supplied
// exclude globs and a built-in exclusion list covering version control
// metadata, build output, binaries and other artifacts that would skew
// the numbers.
//
// Patterns use doublestar syntax: `*` matches within one path segment,
// `**` matches across segments. Paths are matched relative to the scan
// root, with forward slashes on every platform.
//
//	m, err := pattern.New("**/*.go", []string{"**/testdata"})
//	if err != nil {
//		return err
//	}
//
//	m.Match("pkg/scan/scan.go") // true
//	m.Match("testdata/a.go")    // false
package pattern

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher reports whether a path relative to the scan root qualifies for
// counting. It is immutable after construction and safe for concurrent use.
type Matcher struct {
	include  string
	excludes []string
}

// New builds a Matcher from an include pattern and caller-supplied exclude
// patterns. The built-in exclusion list is always applied in addition to
// the caller's excludes. Invalid glob syntax in any pattern is reported as
// an error before any scanning begins.
func New(include string, excludes []string) (*Matcher, error) {
	include = filepath.ToSlash(include)
	if !doublestar.ValidatePattern(include) {
		return nil, fmt.Errorf("invalid include pattern %q", include)
	}

	all := make([]string, 0, len(excludes)+len(DefaultExcludes))
	for _, e := range excludes {
		e = filepath.ToSlash(e)
		if !doublestar.ValidatePattern(e) {
			return nil, fmt.Errorf("invalid exclude pattern %q", e)
		}
		all = append(all, e)
	}
	all = append(all, DefaultExcludes...)

	return &Matcher{
		include:  include,
		excludes: all,
	}, nil
}

// Pattern returns the include pattern the Matcher was built with.
func (m *Matcher) Pattern() string {
	return m.include
}

// Match reports whether a relative file path qualifies: it must match the
// include pattern and none of the exclude patterns, built-in or
// caller-supplied.
func (m *Matcher) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	if ok, _ := doublestar.Match(m.include, rel); !ok {
		return false
	}
	return !m.Excluded(rel)
}

// Excluded reports whether a relative path is ruled out by any exclude
// pattern. A pattern that matches a directory excludes everything beneath
// it, so the walk can prune whole subtrees with a single check.
func (m *Matcher) Excluded(rel string) bool {
	rel = filepath.ToSlash(rel)

	for _, p := range m.excludes {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}

		// Patterns without a separator apply to individual path
		// segments, so a plain ".git" or "*.log" excludes matches at
		// any depth, directories included.
		if !strings.Contains(p, "/") {
			for _, seg := range strings.Split(rel, "/") {
				if ok, _ := doublestar.Match(p, seg); ok {
					return true
				}
			}
			continue
		}

		// A match on any ancestor directory excludes the whole subtree.
		for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
			if ok, _ := doublestar.Match(p, dir); ok {
				return true
			}
		}
	}

	return false
}
