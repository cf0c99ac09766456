package commands

import (
	"github.com/spf13/cobra"

	"kisstest/internal/cli"
	"kisstest/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Env   *Env
	Run   *RunCommand
	List  *ListCommand
	Watch *WatchCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(env *Env) *Commands {
	return &Commands{
		Env:   env,
		Run:   NewRunCommand(env, ui.NewFailureViewer()),
		List:  NewListCommand(env),
		Watch: NewWatchCommand(env),
	}
}

func addDiscoveryFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Directory holding the test files")
	cmd.Flags().StringVar(&flags.FileFilter, "file-filter", "", "Test file name prefix (default \"tests\")")
	cmd.Flags().StringVar(&flags.SymbolFilter, "symbol-filter", "", "Test function name prefix (default \"test\")")
	cmd.Flags().StringVar(&flags.Delimiter, "delimiter", "", "Separator after the function prefix (default \"_\")")
	cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'test_user*' or '*login*')")
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.PersistentFlags().StringVar(&flags.ProjectPath, "project", "", "Project directory holding kiss.yaml and .env")
	rootCmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		return c.Env.Setup(flags)
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		c.Env.Close()
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the test functions of a directory",
		Long:  "Discover test files, load their test functions and run them in order, then print how many passed",
		RunE:  c.Run.Execute,
	}
	addDiscoveryFlags(runCmd, flags)
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print a banner before each test and list failures at the end")
	runCmd.Flags().BoolVar(&flags.Bail, "bail", false, "Exit on the first failed assertion")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on a terminal")
	runCmd.Flags().BoolVar(&flags.Browse, "browse", false, "Open the failure viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered tests",
		Long:  "Scan and list test files and their test functions without loading or running them",
		RunE:  c.List.Execute,
	}
	addDiscoveryFlags(listCmd, flags)
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test functions under each file")
	rootCmd.AddCommand(listCmd)

	// Watch command
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Rerun tests when test files change",
		Long:  "Run the suite, then run a fresh suite every time a test file in the directory changes",
		RunE:  c.Watch.Execute,
	}
	addDiscoveryFlags(watchCmd, flags)
	watchCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print a banner before each test")
	rootCmd.AddCommand(watchCmd)
}
