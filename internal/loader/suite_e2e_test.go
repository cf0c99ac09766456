package loader_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kisstest/internal/domain"
	"kisstest/internal/loader"
	"kisstest/internal/suite"
)

func TestSuite_EndToEnd(t *testing.T) {
	var out bytes.Buffer
	s, err := suite.New(suite.DefaultOptions(), loader.New(zap.NewNop()), nil, suite.WithOutput(&out))
	require.NoError(t, err)

	found, err := s.AssembleFromDirectory(filepath.Join("testdata", "e2e"))
	require.NoError(t, err)
	assert.True(t, found)

	units := s.Units()
	require.Len(t, units, 2)
	assert.Equal(t, "test_pass", units[0].Name())
	assert.Equal(t, "test_fail", units[1].Name())

	assert.True(t, s.Run())
	s.PrintCurrentResults()
	assert.Equal(t, "!!!!! test_fail failed !!!!!\n1 test(s) passed out of 2\n", out.String())
}

func TestSuite_ErrorsAreContained(t *testing.T) {
	var out bytes.Buffer
	opts := suite.DefaultOptions()
	opts.Mode = domain.ModeVerbose
	s, err := suite.New(opts, loader.New(zap.NewNop()), nil, suite.WithOutput(&out))
	require.NoError(t, err)

	found, err := s.AssembleFromDirectory(filepath.Join("testdata", "errors"))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 3, s.Len(), "the commented-out test is not registered")

	assert.True(t, s.Run())
	assert.Equal(t, domain.Summary{Passed: 1, Run: 3}, s.Summary())

	results := s.Results()
	assert.True(t, errors.Is(results[0].Err, domain.ErrTestExecution))
	assert.True(t, results[1].Passed)
	assert.False(t, results[2].Passed)
	assert.False(t, results[2].Errored())

	assert.Contains(t, out.String(), "***** running test_after_panic *****")
	assert.Contains(t, out.String(), "!!!!! test_panics failed !!!!!")
}

func TestSuite_NonExistentPath(t *testing.T) {
	s, err := suite.New(suite.DefaultOptions(), loader.New(zap.NewNop()), nil)
	require.NoError(t, err)

	found, err := s.AssembleFromDirectory(filepath.Join("testdata", "missing"))
	assert.True(t, errors.Is(err, domain.ErrInvalidDirectory))
	assert.False(t, found)
	assert.Zero(t, s.Len())
	assert.False(t, s.Run())
}
