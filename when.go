package oasgen

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WhenRule validates conditionally: it applies one set of rules when the
// condition is true, and an optional alternative set (via [WhenRule.Else])
// when false. Use [When] to create one.
//
// The conditional rules are not applied to the node, they are summarized in
// its description.
type WhenRule struct {
	condition bool
	desc      string
	whenRules []Rule
	elseRules []Rule
}

// When returns a conditional rule that applies rules only when condition is true.
func When(condition bool, desc string, rules ...Rule) *WhenRule {
	return &WhenRule{
		condition: condition,
		desc:      desc,
		whenRules: rules,
	}
}

// Else specifies alternative rules to apply when the [When] condition is false.
func (r *WhenRule) Else(rules ...Rule) *WhenRule {
	r.elseRules = rules
	return r
}

// Validate implements [Rule].
func (r *WhenRule) Validate(value any) error {
	return validation.When(r.condition, convertRules(r.whenRules...)...).
		Else(convertRules(r.elseRules...)...).
		Validate(value)
}

// describeRules describes each rule on a scratch node, then returns a
// human-readable summary of what they set.
func describeRules(rules []Rule) (string, error) {
	if len(rules) == 0 {
		return "", nil
	}

	s := &Schema{}
	for _, r := range rules {
		if r == nil {
			continue
		}
		if err := r.Describe(s); err != nil {
			return "", err
		}
	}

	var parts []string

	if s.Description != "" {
		parts = append(parts, s.Description)
	}
	if s.Required {
		parts = append(parts, "required")
	}
	if s.Minimum != nil {
		parts = append(parts, fmt.Sprintf("min %g", *s.Minimum))
	}
	if s.Maximum != nil {
		parts = append(parts, fmt.Sprintf("max %g", *s.Maximum))
	}
	if s.MinLength != nil {
		parts = append(parts, fmt.Sprintf("min length %d", *s.MinLength))
	}
	if s.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("max length %d", *s.MaxLength))
	}
	if s.Pattern != "" {
		parts = append(parts, "pattern "+s.Pattern)
	}
	if len(s.Enum) > 0 {
		vals := make([]string, len(s.Enum))
		for i, v := range s.Enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if s.UniqueItems {
		parts = append(parts, "unique")
	}

	return strings.Join(parts, ", "), nil
}

// Describe implements [Rule] by appending a human-readable summary of the
// conditional rules to the node description.
func (r *WhenRule) Describe(s *Schema) error {
	desc, err := describeRules(r.whenRules)
	if err != nil {
		return err
	}
	if desc != "" {
		if r.desc != "" {
			desc = fmt.Sprintf("when %s: %s", r.desc, desc)
		}
		appendDescription(s, desc)
	}

	desc, err = describeRules(r.elseRules)
	if err != nil {
		return err
	}
	if desc != "" {
		appendDescription(s, "else: "+desc)
	}
	return nil
}
