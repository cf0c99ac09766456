package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"kisstest/internal/domain"
)

// ProgressBar draws a bar of finished tests during a suite run
type ProgressBar struct {
	w       io.Writer
	bar     *progressbar.ProgressBar
	success int
	failed  int
}

// NewProgressBar creates a progress bar that draws on w once a run starts
func NewProgressBar(w io.Writer) *ProgressBar {
	return &ProgressBar{w: w}
}

func describe(success, failed int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[success: %d", success) +
		" | " +
		color.RedString("failed: %d]", failed)
}

// RunStarted creates the bar for count tests
func (p *ProgressBar) RunStarted(count int) {
	p.success, p.failed = 0, 0
	w := p.w
	p.bar = progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// UnitFinished updates the bar with success and failure counts
func (p *ProgressBar) UnitFinished(result domain.Result) {
	if p.bar == nil {
		return
	}
	if result.Passed {
		p.success++
	} else {
		p.failed++
	}
	_ = p.bar.Set(p.success + p.failed)
	p.bar.Describe(describe(p.success, p.failed))
}

// RunFinished completes the bar
func (p *ProgressBar) RunFinished() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	p.bar = nil
}

// Counts returns the successes and failures seen in the current run
func (p *ProgressBar) Counts() (success, failed int) {
	return p.success, p.failed
}
