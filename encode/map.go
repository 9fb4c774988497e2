package encode

import (
	"fmt"
	"reflect"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Map is an insertion-ordered string-keyed mapping.
type Map = sequencedmap.Map[string, any]

// NewMap returns an empty [Map].
func NewMap() *Map {
	return sequencedmap.New[string, any]()
}

// UnsupportedValueError is returned when a value cannot be rendered. A
// document assembled by Build never produces one.
type UnsupportedValueError struct {
	Value any
	Err   error
}

func (e *UnsupportedValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("encode: unsupported value of type %T: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("encode: unsupported value of type %T", e.Value)
}

func (e *UnsupportedValueError) Unwrap() error {
	return e.Err
}

// checkScalar rejects kinds neither encoder can represent.
func checkScalar(v any) error {
	if v == nil {
		return nil
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return &UnsupportedValueError{Value: v}
	}
	return nil
}
