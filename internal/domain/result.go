package domain

import "time"

// Result is the outcome of the most recent run of a test unit
type Result struct {
	Name     string        // Test function name
	FilePath string        // File the function was loaded from
	Passed   bool          // Boolean returned by the test
	Err      error         // Recovered panic, if the test errored
	Duration time.Duration // Time taken by the call
}

// Errored reports whether the test raised instead of returning
func (r Result) Errored() bool {
	return r.Err != nil
}

// Summary holds pass/run totals
type Summary struct {
	Passed int
	Run    int
}

// Failed returns the number of runs that did not pass
func (s Summary) Failed() int {
	return s.Run - s.Passed
}

// AllPassed reports whether every executed test passed
func (s Summary) AllPassed() bool {
	return s.Passed == s.Run
}
