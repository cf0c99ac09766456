package config

import (
	"fmt"
	"path/filepath"

	"kisstest/internal/discovery"
	"kisstest/internal/domain"
	"kisstest/internal/suite"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Discovery settings
	Mode         string
	FileFilter   string
	SymbolFilter string
	Delimiter    string

	// Assertion settings
	Bail bool

	// Logging
	LogLevel string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath  string
	TestPath     string
	Verbose      bool
	FileFilter   string
	SymbolFilter string
	Delimiter    string
	NameFilter   string
	TestCases    bool
	Bail         bool
	Progress     bool
	Browse       bool
	Debug        bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:  DefaultProjectPath,
		TestPath:     DefaultTestPath,
		Mode:         DefaultMode,
		FileFilter:   DefaultFileFilter,
		SymbolFilter: DefaultSymbolFilter,
		Delimiter:    DefaultDelimiter,
		LogLevel:     DefaultLogLevel,
	}
}

// Load creates a config from defaults, the project's kiss.yaml, the
// environment (after loading the project's .env) and finally flags
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags
	if flags.ProjectPath != "" {
		cfg.ProjectPath = flags.ProjectPath
	}

	if err := cfg.loadFile(filepath.Join(cfg.ProjectPath, FileName)); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(filepath.Join(cfg.ProjectPath, EnvFileName)); err != nil {
		return nil, err
	}
	cfg.applyFlags(flags)

	if _, err := cfg.SuiteMode(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFlags(flags Flags) {
	if flags.Verbose {
		c.Mode = domain.ModeVerbose.String()
	}
	if flags.FileFilter != "" {
		c.FileFilter = flags.FileFilter
	}
	if flags.SymbolFilter != "" {
		c.SymbolFilter = flags.SymbolFilter
	}
	if flags.Delimiter != "" {
		c.Delimiter = flags.Delimiter
	}
	if flags.Bail {
		c.Bail = true
	}
	if flags.Debug {
		c.LogLevel = "debug"
	}
}

// GetTestPath returns the test path, using flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		// If TestPath is provided, make it relative to the project path if it's not absolute
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}

	if filepath.IsAbs(c.TestPath) {
		return c.TestPath
	}
	return filepath.Join(c.ProjectPath, c.TestPath)
}

// SuiteMode parses the configured mode
func (c *Config) SuiteMode() (domain.Mode, error) {
	mode, err := domain.ParseMode(c.Mode)
	if err != nil {
		return domain.ModeNormal, fmt.Errorf("invalid config: %w", err)
	}
	return mode, nil
}

// SuiteOptions builds the suite options from the config, including the --filter name selection
func (c *Config) SuiteOptions() (suite.Options, error) {
	mode, err := c.SuiteMode()
	if err != nil {
		return suite.Options{}, err
	}
	opts := suite.Options{
		Mode:         mode,
		FileFilter:   c.FileFilter,
		SymbolFilter: c.SymbolFilter,
		Delimiter:    c.Delimiter,
	}
	if c.Flags.NameFilter != "" {
		opts.Select = discovery.NewFilter(c.Flags.NameFilter).Match
	}
	return opts, nil
}
