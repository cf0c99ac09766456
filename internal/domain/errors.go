package domain

import "errors"

// Assembly errors abort the whole run before any test executes.
var (
	ErrInvalidDirectory = errors.New("not a directory")
	ErrNoMatchingFiles  = errors.New("no matching test files")
	ErrPatternScan      = errors.New("pattern scan failed")
	ErrFileAccess       = errors.New("cannot read test file")
	ErrLoad             = errors.New("cannot load test file")
)

// ErrTestExecution wraps anything a test body panics with. It is recorded on the
// unit's result and never returned from a run.
var ErrTestExecution = errors.New("test raised")
