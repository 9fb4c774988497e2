package oasgen

import (
	"errors"
	"math"
	"reflect"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// formatRules checks string values of well-known formats.
var formatRules = map[string]validation.Rule{
	"email":     is.EmailFormat,
	"date":      validation.Date("2006-01-02"),
	"date-time": validation.Date(time.RFC3339),
	"byte":      is.Base64,
	"uuid":      is.UUID,
	"uri":       is.URL,
	"ipv4":      is.IPv4,
	"ipv6":      is.IPv6,
	"hostname":  is.DNSName,
}

type formatRule struct {
	format string
}

// Format overrides the format of the node, e.g. "uuid" on a string.
func Format(f string) Rule {
	return formatRule{format: f}
}

func (r formatRule) Describe(s *Schema) error {
	s.Format = r.format
	return nil
}

// Validate is a no-op, the effective format is checked by typeRule.
func (r formatRule) Validate(_ any) error {
	return nil
}

// typeRule checks that a value has the JSON shape of a type and, for
// primitives, that it matches the effective format.
type typeRule struct {
	t      Type
	format string
}

func (r typeRule) Validate(value any) error {
	switch t := r.t.(type) {
	case Primitive:
		if err := checkKind(t.Kind, value); err != nil {
			return err
		}
		if fr, ok := formatRules[r.format]; ok {
			return fr.Validate(value)
		}
	case ArraySingle, ArrayUnion, ArrayAny:
		if k := reflect.TypeOf(value).Kind(); k != reflect.Slice && k != reflect.Array {
			return errors.New("must be an array")
		}
	case *ObjectType:
		if k := reflect.Indirect(reflect.ValueOf(value)).Kind(); k != reflect.Map && k != reflect.Struct {
			return errors.New("must be an object")
		}
	}
	return nil
}

func (r typeRule) Describe(_ *Schema) error {
	return nil
}

func checkKind(kind Kind, value any) error {
	rv := reflect.ValueOf(value)
	switch kind {
	case KindString:
		if rv.Kind() != reflect.String {
			return errors.New("must be a string")
		}
	case KindBoolean:
		if rv.Kind() != reflect.Bool {
			return errors.New("must be a boolean")
		}
	case KindNumber:
		f, err := getFloat(value)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return errors.New("must be a finite number")
		}
	case KindInteger:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return nil
		case reflect.Float32, reflect.Float64:
			if f := rv.Float(); !math.IsInf(f, 0) && f == math.Trunc(f) {
				return nil
			}
		}
		return errors.New("must be an integer")
	}
	return nil
}
