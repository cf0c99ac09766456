package discovery

import (
	"fmt"
	"regexp"
	"strings"

	"kisstest/internal/domain"
)

// Parser extracts test function declarations from Go source text
type Parser struct {
	pattern *regexp.Regexp
}

// NewParser creates a Parser for functions named <symbolFilter><delimiter>...
// Both values are regular expression fragments; an invalid fragment fails with
// domain.ErrPatternScan.
func NewParser(symbolFilter, delimiter string) (*Parser, error) {
	// ^(prefix)   text before func on the same line, checked for a // comment
	// func\s+     keyword
	// (name)      <filter><delim> followed by identifier characters
	// \(\s*\)     no parameters
	// \s*bool\b   a single bool result
	for _, fragment := range []string{symbolFilter, delimiter} {
		if _, err := regexp.Compile(fragment); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", domain.ErrPatternScan, fragment, err)
		}
	}
	expr := fmt.Sprintf(`(?m)^([^\n]*?)\bfunc\s+((?:%s)(?:%s)[\p{L}\p{N}_]*)\s*\(\s*\)\s*bool\b`, symbolFilter, delimiter)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPatternScan, err)
	}
	return &Parser{pattern: re}, nil
}

// Parse returns every qualifying declaration in content, in order. Duplicate names are kept.
func (p *Parser) Parse(path string, content []byte) []domain.TestCase {
	text := string(content)
	var cases []domain.TestCase

	for _, m := range p.pattern.FindAllStringSubmatchIndex(text, -1) {
		lineStart, prefixEnd := m[2], m[3]
		if commentedOut(text, lineStart, prefixEnd) {
			continue
		}
		cases = append(cases, domain.TestCase{
			Name:     text[m[4]:m[5]],
			FilePath: path,
			Line:     strings.Count(text[:lineStart], "\n") + 1,
		})
	}
	return cases
}

// FindTestCases reads the file at path and parses it
func (p *Parser) FindTestCases(path string) ([]domain.TestCase, error) {
	content, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(path, content), nil
}

// commentedOut reports whether a // marker sits before the func keyword on its own line,
// outside any closed /* */ comment, or ends the line right above it.
func commentedOut(text string, lineStart, prefixEnd int) bool {
	if strings.Contains(stripBlockComments(text[lineStart:prefixEnd]), "//") {
		return true
	}
	if lineStart == 0 {
		return false
	}
	prev := text[:lineStart-1]
	if i := strings.LastIndexByte(prev, '\n'); i >= 0 {
		prev = prev[i+1:]
	}
	return strings.HasSuffix(strings.TrimRight(prev, " \t\r"), "//")
}

// stripBlockComments drops every closed /* */ span. An unclosed opener is kept as text.
func stripBlockComments(s string) string {
	var b strings.Builder
	for {
		open := strings.Index(s, "/*")
		if open < 0 {
			break
		}
		end := strings.Index(s[open+2:], "*/")
		if end < 0 {
			break
		}
		b.WriteString(s[:open])
		b.WriteByte(' ')
		s = s[open+2+end+2:]
	}
	b.WriteString(s)
	return b.String()
}
