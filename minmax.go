package oasgen

import (
	"errors"
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type thresholdRule struct {
	threshold any
	min       bool
}

// Min returns a rule that checks if a number is greater than or equal to the
// specified minimum.
func Min(threshold any) Rule {
	return thresholdRule{
		threshold,
		true,
	}
}

// Max returns a rule that checks if a number is less than or equal to the
// specified maximum.
func Max(threshold any) Rule {
	return thresholdRule{
		threshold,
		false,
	}
}

func (r thresholdRule) Describe(s *Schema) error {
	f, err := getFloat(r.threshold)
	if err != nil {
		return err
	}
	if r.min {
		s.Minimum = &f
	} else {
		s.Maximum = &f
	}
	return nil
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	if unk == nil {
		return 0, errors.New("cannot convert nil to float64")
	}
	v := reflect.ValueOf(unk)
	v = reflect.Indirect(v)
	if v.Kind() == reflect.String || v.Kind() == reflect.Bool || !v.Type().ConvertibleTo(floatType) {
		return 0, fmt.Errorf("cannot convert %v to float64", v.Type())
	}
	fv := v.Convert(floatType)
	return fv.Float(), nil
}

// Validate checks if the given value is valid or not.
func (r thresholdRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	f, err := getFloat(value)
	if err != nil {
		return errors.New("must be a number")
	}
	t, err := getFloat(r.threshold)
	if err != nil {
		return err
	}
	params := map[string]any{"threshold": r.threshold}
	if r.min && f < t {
		return validation.ErrMinGreaterEqualThanRequired.SetParams(params)
	}
	if !r.min && f > t {
		return validation.ErrMaxLessEqualThanRequired.SetParams(params)
	}
	return nil
}
