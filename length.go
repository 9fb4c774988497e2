package oasgen

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type lengthRule struct {
	validation.LengthRule
	min, max int
}

// Length returns a rule that checks if a string's rune length is within the
// specified range. A zero bound is not documented, a zero max means no max.
func Length(lo, hi int) Rule {
	return &lengthRule{
		validation.RuneLength(lo, hi),
		lo,
		hi,
	}
}

// MinLength is Length(n, 0).
func MinLength(n int) Rule {
	return Length(n, 0)
}

// MaxLength is Length(0, n).
func MaxLength(n int) Rule {
	return Length(0, n)
}

func (r *lengthRule) Describe(s *Schema) error {
	if r.min > 0 {
		s.MinLength = intPtr(r.min)
	}
	if r.max > 0 {
		s.MaxLength = intPtr(r.max)
	}
	return nil
}

type itemsRule struct {
	validation.LengthRule
	min, max int
}

// Items returns a rule that checks if an array has between lo and hi items.
// A zero max means no max.
func Items(lo, hi int) Rule {
	return &itemsRule{
		validation.Length(lo, hi),
		lo,
		hi,
	}
}

func (r *itemsRule) Describe(s *Schema) error {
	if r.min > 0 {
		s.MinItems = intPtr(r.min)
	}
	if r.max > 0 {
		s.MaxItems = intPtr(r.max)
	}
	return nil
}
