package discovery

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"kisstest/internal/domain"
)

// SourceExt is the extension of loadable test files
const SourceExt = ".go"

// Scanner finds test files directly inside a directory by file name prefix
type Scanner struct {
	prefix string
}

// NewScanner creates a Scanner for files named <prefix>*.go
func NewScanner(prefix string) *Scanner {
	return &Scanner{prefix: prefix}
}

// Pattern returns the file name pattern the scanner matches
func (s *Scanner) Pattern() string {
	return s.prefix + "*" + SourceExt
}

// Scan returns the matching files in root, in lexical order. Subdirectories are not searched.
func (s *Scanner) Scan(root string) ([]string, error) {
	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s does not exist", domain.ErrInvalidDirectory, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDirectory, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileAccess, err)
	}

	pattern := s.Pattern()
	var testfiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: file pattern %q: %v", domain.ErrPatternScan, pattern, err)
		}
		if matched {
			testfiles = append(testfiles, filepath.Join(root, entry.Name()))
		}
	}

	if len(testfiles) == 0 {
		return nil, fmt.Errorf("%w: no %s files beginning with %q in %s", domain.ErrNoMatchingFiles, SourceExt, s.prefix, root)
	}
	return testfiles, nil
}

// ReadFile reads a whole test file. The file is closed on every path.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileAccess, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading %s: %v", domain.ErrFileAccess, path, err)
	}
	return content, nil
}
