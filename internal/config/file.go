package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// fileConfig is the shape of kiss.yaml. Empty fields keep the current value.
type fileConfig struct {
	TestPath     string `yaml:"test_path"`
	Mode         string `yaml:"mode"`
	FileFilter   string `yaml:"file_filter"`
	SymbolFilter string `yaml:"symbol_filter"`
	Delimiter    string `yaml:"delimiter"`
	Bail         *bool  `yaml:"bail"`
	LogLevel     string `yaml:"log_level"`
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	setString(&c.TestPath, fc.TestPath)
	setString(&c.Mode, fc.Mode)
	setString(&c.FileFilter, fc.FileFilter)
	setString(&c.SymbolFilter, fc.SymbolFilter)
	setString(&c.Delimiter, fc.Delimiter)
	setString(&c.LogLevel, fc.LogLevel)
	if fc.Bail != nil {
		c.Bail = *fc.Bail
	}
	return nil
}

func (c *Config) loadEnv(envPath string) error {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(envPath)

	setString(&c.Mode, os.Getenv(EnvMode))
	setString(&c.FileFilter, os.Getenv(EnvFileFilter))
	setString(&c.SymbolFilter, os.Getenv(EnvSymbolFilter))
	setString(&c.Delimiter, os.Getenv(EnvDelimiter))
	setString(&c.LogLevel, os.Getenv(EnvLogLevel))

	if v := os.Getenv(EnvBail); v != "" {
		bail, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvBail, v, err)
		}
		c.Bail = bail
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
