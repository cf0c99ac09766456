// Package assert holds the assertion primitives called from kiss test bodies.
//
// An assertion never panics on failure. It logs what went wrong and returns false,
// so a test can combine several checks and still return a single bool:
//
//	func test_sum() bool {
//		return assert.Equal(sum(1, 2), 3) && assert.Unequal(sum(1, 1), 3)
//	}
//
// When bail mode is on (see Init) the first failed assertion ends the process.
package assert

import (
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"

	"kisstest/internal/logging"
)

// ErrAlreadyInitialized is returned by a second call to Init
var ErrAlreadyInitialized = errors.New("assertions already initialized")

// Options configures how assertion failures are handled
type Options struct {
	// Bail stops the process at the first failed assertion
	Bail bool
	// Logger receives failure diagnostics. Nil means a stderr fallback logger.
	Logger *zap.Logger
	// Exit terminates the process in bail mode. Nil means os.Exit.
	Exit func(code int)
}

// Asserter evaluates assertions with a fixed set of Options
type Asserter struct {
	bail bool
	log  *zap.Logger
	exit func(int)
}

// New creates an Asserter
func New(opts Options) *Asserter {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Fallback()
	}
	exit := opts.Exit
	if exit == nil {
		exit = os.Exit
	}
	return &Asserter{
		bail: opts.Bail,
		log:  logger.Named("assert"),
		exit: exit,
	}
}

// Bail reports whether a failure ends the process
func (a *Asserter) Bail() bool {
	return a.bail
}

var (
	std         = New(Options{})
	initMu      sync.Mutex
	initialized bool
)

// Init installs the process-wide options used by the package-level assertions.
// It must run before any test does and only once; later calls return
// ErrAlreadyInitialized and leave the options unchanged.
func Init(opts Options) error {
	initMu.Lock()
	defer initMu.Unlock()
	if initialized {
		return ErrAlreadyInitialized
	}
	std = New(opts)
	initialized = true
	return nil
}

// Default returns the process-wide Asserter
func Default() *Asserter {
	return std
}

// Equal reports whether left and right are strictly equal: same dynamic type, same value
func Equal(left, right any) bool {
	return std.Equal(left, right)
}

// Unequal reports whether left and right are not strictly equal
func Unequal(left, right any) bool {
	return std.Unequal(left, right)
}

// Raises calls target with args and reports whether it raised an error whose
// message equals expectedMessage (any message when expectedMessage is empty).
func Raises(target any, args []any, expectedMessage string) bool {
	return std.Raises(target, args, expectedMessage)
}

// fail reports a failed assertion and returns false, or ends the process in bail mode
func (a *Asserter) fail(assertion, msg string, fields ...zap.Field) bool {
	fields = append([]zap.Field{zap.String("assertion", assertion)}, fields...)
	if a.bail {
		a.log.Error(msg, fields...)
		_ = a.log.Sync()
		a.exit(1)
		return false
	}
	a.log.Warn(msg, fields...)
	return false
}
