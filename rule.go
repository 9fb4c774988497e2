package oasgen

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type (
	// RuleFunc checks a value and returns an error if it is invalid.
	RuleFunc func(value any) error

	// Rule documents a constraint on a schema node and checks values against it.
	//
	// Describe records the constraint on the node. Validate is run on the
	// node's example and default values once every rule has been described,
	// so a node never documents an example that its own constraints reject.
	Rule interface {
		Validate(value any) error
		Describe(s *Schema) error
	}
)

// docOnly is embedded by rules that only document and never reject a value.
type docOnly struct{}

func (docOnly) Validate(_ any) error {
	return nil
}

func convertRules(rules ...Rule) []validation.Rule {
	out := make([]validation.Rule, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
