package assert

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrMalformedTarget means a reference pair did not have one or two elements
	ErrMalformedTarget = errors.New("malformed assertion target")
	// ErrNotCallable means the target did not resolve to a function
	ErrNotCallable = errors.New("assertion target is not callable")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Raises calls target with args and reports whether it raised an error whose message
// equals expectedMessage, or any error when expectedMessage is empty.
//
// A call raises when it panics or when its last result is a non-nil error.
// target is a function value or a reference pair: []any{fn} or
// []any{instance, "MethodName"}.
func (a *Asserter) Raises(target any, args []any, expectedMessage string) bool {
	fn, name, err := resolveTarget(target)
	if err != nil {
		return a.fail("Raises", fmt.Sprintf("[Raises] %v", err), zap.Error(err))
	}
	in, err := callArgs(fn.Type(), args)
	if err != nil {
		return a.fail("Raises", fmt.Sprintf("[Raises] %s: %v", name, err), zap.String("target", name))
	}

	raised, msg := invoke(fn, in)
	if raised && (expectedMessage == "" || msg == expectedMessage) {
		return true
	}

	fields := []zap.Field{
		zap.String("target", name),
		zap.Any("args", args),
		zap.String("expected", expectedMessage),
	}
	if !raised {
		return a.fail("Raises", fmt.Sprintf("[Raises] %s did not raise with args: %s", name, joinArgs(args)), fields...)
	}
	fields = append(fields, zap.String("got", msg))
	return a.fail("Raises", fmt.Sprintf("[Raises] %s raised %q, want %q", name, msg, expectedMessage), fields...)
}

func resolveTarget(target any) (reflect.Value, string, error) {
	ref, ok := target.([]any)
	if !ok {
		return callable(target)
	}
	switch len(ref) {
	case 1:
		return callable(ref[0])
	case 2:
		return method(ref[0], ref[1])
	default:
		return reflect.Value{}, "", fmt.Errorf("%w: reference pair has %d elements, want 1 or 2", ErrMalformedTarget, len(ref))
	}
}

func callable(v any) (reflect.Value, string, error) {
	fn := reflect.ValueOf(v)
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return reflect.Value{}, "", fmt.Errorf("%w: %T", ErrNotCallable, v)
	}
	name := "func"
	if f := runtime.FuncForPC(fn.Pointer()); f != nil {
		name = f.Name()
	}
	return fn, name, nil
}

func method(instance, methodName any) (reflect.Value, string, error) {
	name, ok := methodName.(string)
	if !ok {
		return reflect.Value{}, "", fmt.Errorf("%w: method name must be a string, got %T", ErrNotCallable, methodName)
	}
	recv := reflect.ValueOf(instance)
	if !recv.IsValid() {
		return reflect.Value{}, "", fmt.Errorf("%w: nil instance for method %q", ErrNotCallable, name)
	}
	m := recv.MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, "", fmt.Errorf("%w: %T has no method %q", ErrNotCallable, instance, name)
	}
	return m, fmt.Sprintf("%T.%s", instance, name), nil
}

// callArgs checks args against the parameters of t before anything is called,
// so a mismatch is reported as a failure instead of passing as a raised panic.
func callArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("got %d args, want at least %d", len(args), n-1)
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("got %d args, want %d", len(args), n)
	}

	in := make([]reflect.Value, 0, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if t.IsVariadic() && i >= n-1 {
			pt = t.In(n - 1).Elem()
		} else {
			pt = t.In(i)
		}

		if arg == nil {
			if !nillable(pt.Kind()) {
				return nil, fmt.Errorf("arg %d: nil is not assignable to %s", i, pt)
			}
			in = append(in, reflect.Zero(pt))
			continue
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("arg %d: %s is not assignable to %s", i, v.Type(), pt)
		}
		in = append(in, v)
	}
	return in, nil
}

func invoke(fn reflect.Value, in []reflect.Value) (raised bool, msg string) {
	defer func() {
		if r := recover(); r != nil {
			raised, msg = true, panicMessage(r)
		}
	}()

	out := fn.Call(in)
	if len(out) == 0 {
		return false, ""
	}
	last := out[len(out)-1]
	if !last.Type().Implements(errorType) || (nillable(last.Kind()) && last.IsNil()) {
		return false, ""
	}
	return true, last.Interface().(error).Error()
}

func panicMessage(r any) string {
	switch v := r.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	}
	return false
}

func joinArgs(args []any) string {
	if len(args) == 0 {
		return "(none)"
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprint(arg)
	}
	return strings.Join(parts, ", ")
}
