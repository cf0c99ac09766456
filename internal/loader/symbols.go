package loader

import (
	"reflect"

	"github.com/traefik/yaegi/interp"

	"kisstest/pkg/assert"
)

// AssertImportPath is the import path test files use for the assertion primitives
const AssertImportPath = "kisstest/pkg/assert"

// Symbols exposes the compiled assertion package to interpreted test files
var Symbols = interp.Exports{
	AssertImportPath + "/assert": {
		"Equal":   reflect.ValueOf(assert.Equal),
		"Unequal": reflect.ValueOf(assert.Unequal),
		"Raises":  reflect.ValueOf(assert.Raises),

		"ErrMalformedTarget": reflect.ValueOf(&assert.ErrMalformedTarget).Elem(),
		"ErrNotCallable":     reflect.ValueOf(&assert.ErrNotCallable).Elem(),
	},
}
