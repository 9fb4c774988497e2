package oasgen

import (
	"errors"
	"reflect"
)

type uniqueRule struct{}

func (r uniqueRule) Describe(s *Schema) error {
	s.UniqueItems = true
	return nil
}

// Unique returns a rule that checks if all elements of an array are distinct.
func Unique() Rule {
	return uniqueRule{}
}

// Validate checks if the given value is valid or not.
func (r uniqueRule) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil
	}

	rv = reflect.Indirect(rv)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		l := rv.Len()
		for i := 0; i < l; i++ {
			for j := i + 1; j < l; j++ {
				if reflect.DeepEqual(rv.Index(i).Interface(), rv.Index(j).Interface()) {
					return errors.New("not unique")
				}
			}
		}
	default:
		return errors.New("must be slice")
	}
	return nil
}
