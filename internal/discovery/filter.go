package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters source files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the files whose base name matches pattern.
// Supports patterns like "*.cpp" or "*Parser*"; a pattern without
// wildcards matches as a substring. An empty pattern keeps everything.
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string
	for _, file := range files {
		if f.Match(pattern, filepath.Base(file)) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

// Match reports whether name matches pattern. Wildcard patterns must match
// the whole name; plain patterns match as a substring.
func (f *Filter) Match(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?[") {
		return strings.Contains(name, pattern)
	}

	matched, err := filepath.Match(pattern, name)
	if err == nil {
		return matched
	}
	// malformed pattern such as "[a"
	return strings.Contains(name, pattern)
}
