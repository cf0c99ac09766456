package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kisstest/internal/domain"
	"kisstest/internal/suite"
	"kisstest/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	env    *Env
	viewer ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(env *Env, viewer ui.Viewer) *RunCommand {
	return &RunCommand{
		env:    env,
		viewer: viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := rc.env.Config

	var observers []suite.Observer
	if cfg.Flags.Progress && isTerminal(rc.env.ErrOut) {
		observers = append(observers, ui.NewProgressBar(rc.env.ErrOut))
	}

	s, err := rc.env.NewSuite(observers...)
	if err != nil {
		return err
	}

	testPath := cfg.GetTestPath()
	found, err := s.AssembleFromDirectory(testPath)
	if err != nil {
		return err
	}
	if !found {
		color.New(color.FgYellow).Fprintln(rc.env.Out, "No tests to execute")
		return nil
	}

	s.Run()
	s.PrintCurrentResults()

	summary := s.Summary()
	failures := domain.FailuresFrom(s.Results())
	if s.Mode() == domain.ModeVerbose && len(failures) > 0 {
		ui.NewFormatter(rc.env.Out, cfg.ProjectPath).PrintFailures(failures)
	}

	if len(failures) > 0 && cfg.Flags.Browse && isTerminal(rc.env.Out) {
		if err := rc.viewer.View(failures); err != nil {
			rc.env.Log.Warn("Failure viewer closed with an error", zap.Error(err))
		}
	}

	if !summary.AllPassed() {
		return ErrTestsFailed
	}
	return nil
}
