// Package logging builds the zap loggers used across kiss.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = "info"

// New builds a human-readable logger on stderr at the given level
// ("debug", "info", "warn", "error"; empty means DefaultLevel).
func New(level string) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Fallback returns a warn-level stderr logger, or a no-op logger if one cannot be built.
// It is meant for code paths that run before configuration is loaded.
func Fallback() *zap.Logger {
	logger, err := New("warn")
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
