// Package loader evaluates test files in an embedded Go interpreter and resolves
// their test functions.
package loader

import (
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"reflect"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.uber.org/zap"

	"kisstest/internal/domain"
)

// Loader evaluates each file in its own interpreter so helpers with the same
// name in different files do not collide.
type Loader struct {
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Loader
type Option func(*Loader)

// WithOutput sets where interpreted code writes os.Stdout and os.Stderr
func WithOutput(stdout, stderr io.Writer) Option {
	return func(l *Loader) {
		l.stdout = stdout
		l.stderr = stderr
	}
}

// New creates a Loader
func New(logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		log:    logger.Named("loader"),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load evaluates src (the contents of path) and returns one callable per name,
// in the order given. Every name must resolve to a func() bool.
func (l *Loader) Load(path string, src []byte, names []string) ([]any, error) {
	pkg, err := packageName(path, src)
	if err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{
		Stdout: l.stdout,
		Stderr: l.stderr,
	})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("%w: failed to load stdlib: %v", domain.ErrLoad, err)
	}
	if err := i.Use(Symbols); err != nil {
		return nil, fmt.Errorf("%w: failed to load assertions: %v", domain.ErrLoad, err)
	}

	if _, err := i.Eval(string(src)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLoad, path, err)
	}
	l.log.Debug("Evaluated test file", zap.String("path", path), zap.String("package", pkg))

	fns := make([]any, 0, len(names))
	for _, name := range names {
		fn, err := resolve(i, pkg, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrLoad, path, err)
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

// packageName reads only the package clause; nothing else in the file is evaluated
func packageName(path string, src []byte) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.PackageClauseOnly)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrLoad, err)
	}
	return file.Name.Name, nil
}

func resolve(i *interp.Interpreter, pkg, name string) (func() bool, error) {
	expr := name
	if pkg != "main" {
		expr = pkg + "." + name
	}

	v, err := i.Eval(expr)
	if err != nil {
		return nil, fmt.Errorf("symbol %s not found: %v", name, err)
	}
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, fmt.Errorf("symbol %s is not a function", name)
	}
	fn, ok := v.Interface().(func() bool)
	if !ok {
		return nil, fmt.Errorf("symbol %s has incorrect signature (expected: func() bool)", name)
	}
	return fn, nil
}
