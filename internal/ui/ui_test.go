package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kisstest/internal/domain"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestFormatter_Reporter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, "")

	f.TestStarted("test_a")
	f.TestFailed("test_a")
	f.Summary(1, 2)

	assert.Equal(t, "***** running test_a *****\n!!!!! test_a failed !!!!!\n1 test(s) passed out of 2\n", buf.String())
}

func TestFormatter_PrintTestList(t *testing.T) {
	files := []domain.TestFile{
		{Path: "/proj/tests_a.go", Cases: []domain.TestCase{{Name: "test_1", Line: 3}, {Name: "test_2", Line: 7}}},
		{Path: "/proj/sub/tests_b.go"},
	}

	t.Run("files only", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf, "/proj").PrintTestList(files, false)
		assert.Equal(t, "Found 2 test file(s):\n\n├── tests_a.go\n└── sub/tests_b.go\n", buf.String())
	})

	t.Run("with cases", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf, "/proj").PrintTestList(files, true)
		out := buf.String()
		assert.Contains(t, out, "Found 2 test file(s) with 2 test case(s)")
		assert.Contains(t, out, "│   ├── test_1:3\n│   └── test_2:7\n")
		assert.Contains(t, out, "    └── (no test cases found)\n")
	})
}

func TestFormatter_PrintFailures(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, "")

	f.PrintFailures(nil)
	assert.Equal(t, "✓ All tests passed!\n", buf.String())

	buf.Reset()
	f.PrintFailures([]domain.TestFailure{
		{TestName: "test_z", FilePath: "b.go", Message: "returned false"},
		{TestName: "test_y", FilePath: "a.go", Message: "boom"},
	})
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "✗ 2 test(s) failed in 2 file(s)\n"))
	assert.Less(t, strings.Index(out, "a.go"), strings.Index(out, "b.go"))
	assert.Contains(t, out, "  |_ test_y: boom\n")
}

func TestProgressBar_Counts(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressBar(&buf)

	p.UnitFinished(domain.Result{Passed: true})
	success, failed := p.Counts()
	assert.Zero(t, success+failed, "updates before RunStarted are ignored")

	p.RunStarted(3)
	p.UnitFinished(domain.Result{Passed: true})
	p.UnitFinished(domain.Result{Passed: false})
	p.UnitFinished(domain.Result{Passed: false, Err: errors.New("x")})
	success, failed = p.Counts()
	assert.Equal(t, 1, success)
	assert.Equal(t, 2, failed)

	p.RunFinished()
	assert.NotEmpty(t, buf.String())
}

func TestFailureViewer_Resolved(t *testing.T) {
	failures := []domain.TestFailure{{TestName: "test_a"}, {TestName: "test_b"}}
	fv := NewFailureViewer()

	require.Equal(t, 2, fv.Unresolved(failures))
	assert.Equal(t, "[yellow]1.[white] test_a", fv.listItemText(failures[0], 0))

	fv.Toggle(0)
	assert.Equal(t, 1, fv.Unresolved(failures))
	assert.Contains(t, fv.listItemText(failures[0], 0), "✓")
	assert.Contains(t, fv.headerText(failures), "(2 total, 1 unresolved)")

	fv.Toggle(0)
	assert.Equal(t, 2, fv.Unresolved(failures))
}

func TestFormatFailure(t *testing.T) {
	failure := domain.TestFailure{TestName: "test_a", FilePath: "tests_x.go", Message: "boom", Errored: true}

	details := formatFailureDetails(failure)
	assert.Contains(t, details, "Test: test_a")
	assert.Contains(t, details, "Raised:")
	assert.Contains(t, details, "boom")

	assert.Equal(t, "[cyan]path:[white] [yellow]Unknown path[white]::[yellow]Test 4[white]\n",
		formatFailureStats(domain.TestFailure{}, 4))
}
