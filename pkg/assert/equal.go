package assert

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

// Unexported fields take part in the diff.
var cmpOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// strictEqual requires the same dynamic type and deep equality. Equal methods
// are not consulted, so time.Time values in different locations differ.
func strictEqual(left, right any) bool {
	return reflect.TypeOf(left) == reflect.TypeOf(right) && reflect.DeepEqual(left, right)
}

// Equal reports whether left and right are strictly equal
func (a *Asserter) Equal(left, right any) bool {
	if strictEqual(left, right) {
		return true
	}
	return a.fail("Equal", fmt.Sprintf("[Equal] '%v' not equal to '%v'", left, right),
		typeFields(left, right)...)
}

// Unequal reports whether left and right are not strictly equal
func (a *Asserter) Unequal(left, right any) bool {
	if !strictEqual(left, right) {
		return true
	}
	return a.fail("Unequal", fmt.Sprintf("[Unequal] '%v' equal to '%v'", left, right),
		typeFields(left, right)...)
}

func typeFields(left, right any) []zap.Field {
	fields := []zap.Field{
		zap.String("left_type", fmt.Sprintf("%T", left)),
		zap.String("right_type", fmt.Sprintf("%T", right)),
	}
	if reflect.TypeOf(left) == reflect.TypeOf(right) {
		if diff := cmp.Diff(left, right, cmpOptions...); diff != "" {
			fields = append(fields, zap.String("diff", diff))
		}
	}
	return fields
}
