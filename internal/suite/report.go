package suite

import (
	"fmt"
	"io"

	"kisstest/internal/domain"
)

// PrintCurrentResults reports the suite-level pass/run totals
func (s *Suite) PrintCurrentResults() {
	s.reporter.Summary(s.passCount, s.runCount)
}

// Counts returns the suite-level totals. They are not derived from the units' own counters.
func (s *Suite) Counts() (passed, run int) {
	return s.passCount, s.runCount
}

// Summary returns the suite-level totals
func (s *Suite) Summary() domain.Summary {
	return domain.Summary{Passed: s.passCount, Run: s.runCount}
}

// Results returns the latest result of every unit, in discovery order
func (s *Suite) Results() []domain.Result {
	results := make([]domain.Result, 0, len(s.units))
	for _, u := range s.units {
		results = append(results, u.LastResult())
	}
	return results
}

// TextReporter writes uncolored banners and summaries
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a TextReporter writing to w
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// TestStarted prints the verbose start banner
func (r *TextReporter) TestStarted(name string) {
	fmt.Fprintf(r.w, "***** running %s *****\n", name)
}

// TestFailed prints the failure banner
func (r *TextReporter) TestFailed(name string) {
	fmt.Fprintf(r.w, "!!!!! %s failed !!!!!\n", name)
}

// Summary prints the pass/run line
func (r *TextReporter) Summary(passed, run int) {
	fmt.Fprintf(r.w, "%d test(s) passed out of %d\n", passed, run)
}
