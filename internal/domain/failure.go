package domain

import "fmt"

// TestFailure is a failed result prepared for display
type TestFailure struct {
	TestName string
	FilePath string
	Message  string
	Errored  bool
}

// FailuresFrom picks the failed results, keeping their order
func FailuresFrom(results []Result) []TestFailure {
	var failures []TestFailure
	for _, r := range results {
		if r.Passed {
			continue
		}
		msg := "returned false"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		failures = append(failures, TestFailure{
			TestName: r.Name,
			FilePath: r.FilePath,
			Message:  msg,
			Errored:  r.Err != nil,
		})
	}
	return failures
}

// String renders the failure as path::name: message
func (f TestFailure) String() string {
	return fmt.Sprintf("%s::%s: %s", f.FilePath, f.TestName, f.Message)
}
