package suite

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"kisstest/internal/domain"
)

// fakeLoader resolves names from a fixed table and records what it was asked to load
type fakeLoader struct {
	symbols map[string]any
	loaded  []string
	err     error
}

func (f *fakeLoader) Load(path string, src []byte, names []string) ([]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.loaded = append(f.loaded, filepath.Base(path))
	fns := make([]any, 0, len(names))
	for _, name := range names {
		fn, ok := f.symbols[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s not found", domain.ErrLoad, name)
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

func pass() bool { return true }
func fail() bool { return false }

func writeArchive(t *testing.T, archive string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range txtar.Parse([]byte(archive)).Files {
		path := filepath.Join(dir, f.Name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, f.Data, 0644))
	}
	return dir
}

func newSuite(t *testing.T, opts Options, loader Loader, setters ...Option) (*Suite, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s, err := New(opts, loader, nil, append([]Option{WithOutput(&out)}, setters...)...)
	require.NoError(t, err)
	return s, &out
}

const twoFiles = `
-- tests_b.go --
package main

func test_b1() bool { return true }
-- tests_a.go --
package main

// func test_x() bool {}
func test_a1() bool { return true }
func helper() bool { return true }
func test_a2() bool { return false }
-- tests_empty.go --
package main

func helper2() {}
-- other.go --
package main

func test_other() bool { return true }
`

func TestAssembleFromDirectory(t *testing.T) {
	dir := writeArchive(t, twoFiles)
	loader := &fakeLoader{symbols: map[string]any{
		"test_a1": pass, "test_a2": fail, "test_b1": pass, "test_x": pass, "test_other": pass,
	}}
	s, _ := newSuite(t, DefaultOptions(), loader)

	found, err := s.AssembleFromDirectory(dir)
	require.NoError(t, err)
	assert.True(t, found)

	var names []string
	for _, u := range s.Units() {
		names = append(names, u.Name())
	}
	assert.Equal(t, []string{"test_a1", "test_a2", "test_b1"}, names)
	assert.Equal(t, []string{"tests_a.go", "tests_b.go"}, loader.loaded, "files without matches are not loaded")
	assert.Equal(t, filepath.Join(dir, "tests_a.go"), s.Units()[0].File())
}

func TestAssembleFromDirectory_DuplicatesKept(t *testing.T) {
	dir := writeArchive(t, `
-- tests_dup.go --
package main
func test_same() bool { return true }
func test_same() bool { return true }
`)
	s, _ := newSuite(t, DefaultOptions(), &fakeLoader{symbols: map[string]any{"test_same": pass}})

	found, err := s.AssembleFromDirectory(dir)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, s.Len())
}

func TestAssembleFromDirectory_NoSignatures(t *testing.T) {
	dir := writeArchive(t, `
-- tests_helpers.go --
package main
func helper() bool { return true }
func test_args(n int) bool { return n > 0 }
`)
	loader := &fakeLoader{}
	s, _ := newSuite(t, DefaultOptions(), loader)

	found, err := s.AssembleFromDirectory(dir)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, s.Len())
	assert.Empty(t, loader.loaded)
}

func TestAssembleFromDirectory_Errors(t *testing.T) {
	dir := writeArchive(t, twoFiles)

	tests := []struct {
		name   string
		path   string
		opts   func(*Options)
		loader *fakeLoader
		want   error
	}{
		{
			name:   "missing directory",
			path:   filepath.Join(dir, "nope"),
			loader: &fakeLoader{},
			want:   domain.ErrInvalidDirectory,
		},
		{
			name:   "path is a file",
			path:   filepath.Join(dir, "tests_a.go"),
			loader: &fakeLoader{},
			want:   domain.ErrInvalidDirectory,
		},
		{
			name:   "no files with prefix",
			path:   dir,
			opts:   func(o *Options) { o.FileFilter = "sample" },
			loader: &fakeLoader{},
			want:   domain.ErrNoMatchingFiles,
		},
		{
			name:   "loader fails",
			path:   dir,
			loader: &fakeLoader{err: fmt.Errorf("%w: boom", domain.ErrLoad)},
			want:   domain.ErrLoad,
		},
		{
			name:   "symbol missing in second file",
			path:   dir,
			loader: &fakeLoader{symbols: map[string]any{"test_a1": pass, "test_a2": fail}},
			want:   domain.ErrLoad,
		},
		{
			name:   "symbol has wrong type",
			path:   dir,
			loader: &fakeLoader{symbols: map[string]any{"test_a1": pass, "test_a2": "nope", "test_b1": pass}},
			want:   domain.ErrLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}
			s, _ := newSuite(t, opts, tt.loader)

			found, err := s.AssembleFromDirectory(tt.path)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.False(t, found)
			assert.Zero(t, s.Len(), "nothing is registered on error")
		})
	}
}

func TestAssembleFromDirectory_Unreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	dir := writeArchive(t, twoFiles)
	require.NoError(t, os.Chmod(filepath.Join(dir, "tests_b.go"), 0))

	s, _ := newSuite(t, DefaultOptions(), &fakeLoader{symbols: map[string]any{"test_a1": pass, "test_a2": fail}})
	_, err := s.AssembleFromDirectory(dir)
	assert.True(t, errors.Is(err, domain.ErrFileAccess), "got %v", err)
	assert.Zero(t, s.Len())
}

func TestNew_InvalidPattern(t *testing.T) {
	opts := DefaultOptions()
	opts.SymbolFilter = "test["
	_, err := New(opts, &fakeLoader{}, nil)
	assert.True(t, errors.Is(err, domain.ErrPatternScan))
}

func TestAssembleFromDirectory_Select(t *testing.T) {
	dir := writeArchive(t, twoFiles)
	opts := DefaultOptions()
	opts.Select = func(name string) bool { return name == "test_b1" }
	loader := &fakeLoader{symbols: map[string]any{"test_b1": pass}}
	s, _ := newSuite(t, opts, loader)

	found, err := s.AssembleFromDirectory(dir)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"tests_b.go"}, loader.loaded)
}

func TestAssembleFromDirectory_CustomFilters(t *testing.T) {
	dir := writeArchive(t, `
-- sample_checks.go --
package main
func check_one() bool { return true }
func test_two() bool { return true }
`)
	opts := DefaultOptions()
	opts.FileFilter = "sample"
	opts.SymbolFilter = "check"
	s, _ := newSuite(t, opts, &fakeLoader{symbols: map[string]any{"check_one": pass}})

	found, err := s.AssembleFromDirectory(dir)
	require.NoError(t, err)
	assert.True(t, found)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "check_one", s.Units()[0].Name())
}
