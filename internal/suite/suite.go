// Package suite assembles test units from a directory and runs them in order.
package suite

import (
	"io"
	"os"

	"go.uber.org/zap"

	"kisstest/internal/discovery"
	"kisstest/internal/domain"
	"kisstest/internal/execution"
)

const (
	// DefaultFileFilter is the prefix of test file names
	DefaultFileFilter = "tests"
	// DefaultSymbolFilter is the prefix of test function names
	DefaultSymbolFilter = "test"
	// DefaultDelimiter separates the symbol filter from the rest of the name
	DefaultDelimiter = "_"
)

// Options controls discovery and output. Options are fixed once a Suite is created.
type Options struct {
	Mode         domain.Mode
	FileFilter   string // test files are <FileFilter>*.go
	SymbolFilter string // test functions are <SymbolFilter><Delimiter>...
	Delimiter    string

	// Select, when set, keeps only the discovered names it returns true for
	Select func(name string) bool
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Mode:         domain.ModeNormal,
		FileFilter:   DefaultFileFilter,
		SymbolFilter: DefaultSymbolFilter,
		Delimiter:    DefaultDelimiter,
	}
}

// Loader turns the matched names of a test file into callables, in the same order
type Loader interface {
	Load(path string, src []byte, names []string) ([]any, error)
}

// Reporter prints the per-test banners and the summary line
type Reporter interface {
	TestStarted(name string)
	TestFailed(name string)
	Summary(passed, run int)
}

// Observer is told about progress during Run
type Observer interface {
	RunStarted(total int)
	UnitFinished(result domain.Result)
	RunFinished()
}

// Suite owns an ordered list of test units and its own pass/run totals.
// The totals are kept apart from the units' counters and add up across Run calls.
// A Suite is not safe for concurrent use.
type Suite struct {
	opts      Options
	scanner   *discovery.Scanner
	parser    *discovery.Parser
	loader    Loader
	reporter  Reporter
	observers []Observer
	log       *zap.Logger

	units     []*execution.Unit
	runCount  int
	passCount int
}

// Option customizes a Suite
type Option func(*Suite)

// WithReporter replaces the plain-text reporter on stdout
func WithReporter(r Reporter) Option {
	return func(s *Suite) { s.reporter = r }
}

// WithOutput sends the plain-text reporter to w
func WithOutput(w io.Writer) Option {
	return func(s *Suite) { s.reporter = NewTextReporter(w) }
}

// WithObserver adds an observer notified during Run
func WithObserver(o Observer) Option {
	return func(s *Suite) { s.observers = append(s.observers, o) }
}

// New creates a Suite. It fails with domain.ErrPatternScan when the symbol
// filter and delimiter do not form a valid pattern.
func New(opts Options, loader Loader, logger *zap.Logger, setters ...Option) (*Suite, error) {
	parser, err := discovery.NewParser(opts.SymbolFilter, opts.Delimiter)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Suite{
		opts:     opts,
		scanner:  discovery.NewScanner(opts.FileFilter),
		parser:   parser,
		loader:   loader,
		reporter: NewTextReporter(os.Stdout),
		log:      logger.Named("suite"),
	}
	for _, set := range setters {
		set(s)
	}
	return s, nil
}

// Mode returns the suite's output mode
func (s *Suite) Mode() domain.Mode {
	return s.opts.Mode
}

// Units returns the registered units in discovery order
func (s *Suite) Units() []*execution.Unit {
	units := make([]*execution.Unit, len(s.units))
	copy(units, s.units)
	return units
}

// Len returns the number of registered units
func (s *Suite) Len() int {
	return len(s.units)
}
