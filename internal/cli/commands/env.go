package commands

import (
	"errors"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"kisstest/internal/cli"
	"kisstest/internal/config"
	"kisstest/internal/loader"
	"kisstest/internal/logging"
	"kisstest/internal/suite"
	"kisstest/internal/ui"
	"kisstest/pkg/assert"
)

// ErrTestsFailed is returned by run when at least one executed test did not pass
var ErrTestsFailed = errors.New("tests failed")

// Env is the state shared by the commands once flags are parsed
type Env struct {
	Config *config.Config
	Log    *zap.Logger
	Out    io.Writer
	ErrOut io.Writer
}

// NewEnv creates an Env with default config writing to stdout and stderr
func NewEnv() *Env {
	return &Env{
		Config: config.New(),
		Log:    zap.NewNop(),
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

// Setup loads the config, builds the logger and configures the assertion library
func (e *Env) Setup(flags *cli.Flags) error {
	cfg, err := config.Load(flags.ToConfigFlags())
	if err != nil {
		return err
	}
	*e.Config = *cfg

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	e.Log = logger

	err = assert.Init(assert.Options{Bail: cfg.Bail, Logger: logger})
	if errors.Is(err, assert.ErrAlreadyInitialized) {
		logger.Debug("Assertions already initialized")
		return nil
	}
	return err
}

// Close flushes the logger
func (e *Env) Close() {
	_ = e.Log.Sync()
}

// NewSuite builds an empty suite from the config, reporting through the color formatter
func (e *Env) NewSuite(observers ...suite.Observer) (*suite.Suite, error) {
	opts, err := e.Config.SuiteOptions()
	if err != nil {
		return nil, err
	}

	setters := []suite.Option{suite.WithReporter(ui.NewFormatter(e.Out, e.Config.ProjectPath))}
	for _, o := range observers {
		setters = append(setters, suite.WithObserver(o))
	}

	ld := loader.New(e.Log, loader.WithOutput(e.Out, e.ErrOut))
	return suite.New(opts, ld, e.Log, setters...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
