package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"kisstest/internal/domain"
)

var (
	bannerColor  = color.New(color.FgCyan)
	failColor    = color.New(color.FgRed, color.Bold)
	passColor    = color.New(color.FgGreen)
	fileColor    = color.New(color.FgCyan)
	caseColor    = color.New(color.FgYellow)
	missingColor = color.New(color.FgRed)
)

// Formatter prints suite banners, summaries and test listings in color.
// It satisfies suite.Reporter, with the same text as the plain reporter.
type Formatter struct {
	w    io.Writer
	root string
}

// NewFormatter creates a Formatter writing to w. Paths are shown relative to root.
func NewFormatter(w io.Writer, root string) *Formatter {
	return &Formatter{w: w, root: root}
}

// TestStarted prints the verbose start banner
func (f *Formatter) TestStarted(name string) {
	bannerColor.Fprintf(f.w, "***** running %s *****\n", name)
}

// TestFailed prints the failure banner
func (f *Formatter) TestFailed(name string) {
	failColor.Fprintf(f.w, "!!!!! %s failed !!!!!\n", name)
}

// Summary prints the pass/run line, green only when everything passed
func (f *Formatter) Summary(passed, run int) {
	c := passColor
	if passed != run {
		c = failColor
	}
	c.Fprintf(f.w, "%d test(s) passed out of %d\n", passed, run)
}

func (f *Formatter) relPath(path string) string {
	if f.root == "" {
		return path
	}
	rel, err := filepath.Rel(f.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// PrintTestList prints a list of test files, optionally with test cases.
func (f *Formatter) PrintTestList(files []domain.TestFile, showTestCases bool) {
	total := 0
	for _, file := range files {
		total += len(file.Cases)
	}
	if showTestCases {
		passColor.Fprintf(f.w, "Found %d test file(s) with %d test case(s):\n\n", len(files), total)
	} else {
		passColor.Fprintf(f.w, "Found %d test file(s):\n\n", len(files))
	}

	for i, file := range files {
		isLastFile := i == len(files)-1
		if isLastFile {
			fileColor.Fprintf(f.w, "└── %s\n", f.relPath(file.Path))
		} else {
			fileColor.Fprintf(f.w, "├── %s\n", f.relPath(file.Path))
		}
		if !showTestCases {
			continue
		}

		indent := "│   "
		if isLastFile {
			indent = "    "
		}
		if len(file.Cases) == 0 {
			fmt.Fprintf(f.w, "%s└── %s\n", indent, missingColor.Sprint("(no test cases found)"))
			continue
		}
		for j, tc := range file.Cases {
			branch := "├── "
			if j == len(file.Cases)-1 {
				branch = "└── "
			}
			fmt.Fprintf(f.w, "%s%s%s\n", indent, branch, caseColor.Sprintf("%s:%d", tc.Name, tc.Line))
		}
	}
}

// PrintFailures groups failures by file, in sorted file order
func (f *Formatter) PrintFailures(failures []domain.TestFailure) {
	if len(failures) == 0 {
		passColor.Fprintln(f.w, "✓ All tests passed!")
		return
	}

	byFile := make(map[string][]domain.TestFailure)
	for _, failure := range failures {
		byFile[failure.FilePath] = append(byFile[failure.FilePath], failure)
	}
	paths := make([]string, 0, len(byFile))
	for path := range byFile {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	failColor.Fprintf(f.w, "✗ %d test(s) failed in %d file(s)\n", len(failures), len(paths))
	for _, path := range paths {
		caseColor.Fprintf(f.w, "%s\n", f.relPath(path))
		for _, failure := range byFile[path] {
			fmt.Fprintf(f.w, "  |_ %s: %s\n", missingColor.Sprint(failure.TestName), failure.Message)
		}
	}
}
