package discovery

import (
	"path/filepath"
	"strings"

	"kisstest/internal/domain"
)

// Filter selects test cases by name pattern
type Filter struct {
	pattern string
}

// NewFilter creates a Filter. An empty pattern selects everything.
func NewFilter(pattern string) *Filter {
	return &Filter{pattern: pattern}
}

// Match reports whether a test name is selected by the pattern.
// Supports patterns like "test_user*" or "*login*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) Match(name string) bool {
	pattern := f.pattern
	if pattern == "" {
		return true
	}

	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		// Every non-empty piece between wildcards must appear in the name
		hasPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}

// FilterCases keeps the cases selected by the pattern, in order
func (f *Filter) FilterCases(cases []domain.TestCase) []domain.TestCase {
	if f.pattern == "" {
		return cases
	}

	var filtered []domain.TestCase
	for _, c := range cases {
		if f.Match(c.Name) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
