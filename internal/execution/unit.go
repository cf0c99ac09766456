package execution

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"go.uber.org/zap"

	"kisstest/internal/domain"
)

// ErrInvalidSymbol is returned by NewUnit for values that cannot be run as a test
var ErrInvalidSymbol = errors.New("invalid test symbol")

// Unit wraps one test function and counts its own runs and passes.
// A Unit is not safe for concurrent use.
type Unit struct {
	name string
	file string
	fn   reflect.Value
	args []reflect.Value
	log  *zap.Logger

	runCount  int
	passCount int
	last      domain.Result
}

// NewUnit creates a Unit for fn, which must return exactly one bool.
// args are passed to fn on every run and must fit its parameters.
func NewUnit(name, file string, fn any, logger *zap.Logger, args ...any) (*Unit, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %s is %T, not a function", ErrInvalidSymbol, name, fn)
	}
	t := v.Type()
	if t.NumOut() != 1 || t.Out(0).Kind() != reflect.Bool {
		return nil, fmt.Errorf("%w: %s must return a single bool, has type %s", ErrInvalidSymbol, name, t)
	}
	in, err := bindArgs(t, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSymbol, name, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Unit{
		name: name,
		file: file,
		fn:   v,
		args: in,
		log:  logger,
		last: domain.Result{Name: name, FilePath: file},
	}, nil
}

// Name returns the test function name
func (u *Unit) Name() string { return u.name }

// File returns the file the function was loaded from
func (u *Unit) File() string { return u.file }

// RunCount returns how many times the unit has run
func (u *Unit) RunCount() int { return u.runCount }

// PassCount returns how many runs returned true
func (u *Unit) PassCount() int { return u.passCount }

// LastResult returns the result of the most recent run
func (u *Unit) LastResult() domain.Result { return u.last }

// Run calls the test function once. A panic inside the test is logged and
// counts as a failed run; it never reaches the caller.
func (u *Unit) Run() bool {
	u.runCount++
	start := time.Now()

	result, err := u.call()
	u.last = domain.Result{
		Name:     u.name,
		FilePath: u.file,
		Passed:   result,
		Err:      err,
		Duration: time.Since(start),
	}
	if err != nil {
		u.log.Error("Test raised", zap.String("test", u.name), zap.String("file", u.file), zap.Error(err))
	}

	if result {
		u.passCount++
	}
	return result
}

func (u *Unit) call() (result bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = false
			err = fmt.Errorf("%w: %v", domain.ErrTestExecution, r)
		}
	}()
	return u.fn.Call(u.args)[0].Bool(), nil
}

// PrintCurrentResults writes the unit's pass/run totals
func (u *Unit) PrintCurrentResults(w io.Writer) {
	fmt.Fprintf(w, "%d test(s) passed out of %d\n", u.passCount, u.runCount)
}

func bindArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("got %d args, want at least %d", len(args), n-1)
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("got %d args, want %d", len(args), n)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramType(t, i)
		if arg == nil {
			switch pt.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(pt)
				continue
			}
			return nil, fmt.Errorf("arg %d: nil is not assignable to %s", i, pt)
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("arg %d: %s is not assignable to %s", i, v.Type(), pt)
		}
		in[i] = v
	}
	return in, nil
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}
