package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kisstest/internal/discovery"
	"kisstest/internal/domain"
	"kisstest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	env *Env
}

// NewListCommand creates a new ListCommand
func NewListCommand(env *Env) *ListCommand {
	return &ListCommand{env: env}
}

// Discover scans the test path and parses each file without loading it
func (lc *ListCommand) Discover() ([]domain.TestFile, error) {
	cfg := lc.env.Config
	parser, err := discovery.NewParser(cfg.SymbolFilter, cfg.Delimiter)
	if err != nil {
		return nil, err
	}

	paths, err := discovery.NewScanner(cfg.FileFilter).Scan(cfg.GetTestPath())
	if err != nil {
		return nil, err
	}

	filter := discovery.NewFilter(cfg.Flags.NameFilter)
	files := make([]domain.TestFile, 0, len(paths))
	for _, path := range paths {
		cases, err := parser.FindTestCases(path)
		if err != nil {
			return nil, err
		}
		files = append(files, domain.TestFile{Path: path, Cases: filter.FilterCases(cases)})
	}
	return files, nil
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	files, err := lc.Discover()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		color.New(color.FgYellow).Fprintln(lc.env.Out, "No tests found")
		return nil
	}

	ui.NewFormatter(lc.env.Out, lc.env.Config.ProjectPath).PrintTestList(files, lc.env.Config.Flags.TestCases)
	return nil
}
