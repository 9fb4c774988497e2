package oasgen

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Each returns a rule that applies the given rules to each element of an
// array. Item types carry no attributes of their own, so the rules are
// summarized in the array's description.
func Each(rules ...Rule) Rule {
	return &eachRule{
		validation.Each(convertRules(rules...)...),
		rules,
	}
}

type eachRule struct {
	validation.EachRule
	rules []Rule
}

func (r *eachRule) Describe(s *Schema) error {
	desc, err := describeRules(r.rules)
	if err != nil {
		return err
	}
	if desc != "" {
		appendDescription(s, "each item: "+desc)
	}
	return nil
}
