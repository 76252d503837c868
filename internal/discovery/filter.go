package discovery

import (
	"fmt"
	"path"

	"github.com/gobwas/glob"
)

// Filter excludes paths matching any of a set of glob patterns
type Filter struct {
	patterns []string
	globs    []glob.Glob
}

// NewFilter compiles the given patterns. Patterns use '/' as separator and
// are matched against slash separated paths relative to the scanned root,
// e.g. "vendor/**", "*_helpers.c" or "**/fixtures/*".
func NewFilter(patterns []string) (*Filter, error) {
	f := &Filter{}
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		f.patterns = append(f.patterns, pattern)
		f.globs = append(f.globs, g)
	}
	return f, nil
}

// Patterns returns the compiled patterns in the order they were given
func (f *Filter) Patterns() []string {
	if f == nil {
		return nil
	}
	return f.patterns
}

// Excluded reports whether relPath or its base name matches an exclude
// pattern.
func (f *Filter) Excluded(relPath string) bool {
	if f == nil {
		return false
	}
	base := path.Base(relPath)
	for _, g := range f.globs {
		if g.Match(relPath) || g.Match(base) {
			return true
		}
	}
	return false
}
