package oasgen

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type patternRule struct {
	expr string
	re   *regexp.Regexp
	err  error
}

// Pattern returns a rule that checks a string against the regular expression
// expr and documents it as the node's pattern.
func Pattern(expr string) Rule {
	re, err := regexp.Compile(expr)
	return &patternRule{expr: expr, re: re, err: err}
}

func (r *patternRule) Describe(s *Schema) error {
	if r.err != nil {
		return fmt.Errorf("oasgen: invalid pattern %q: %w", r.expr, r.err)
	}
	s.Pattern = r.expr
	return nil
}

func (r *patternRule) Validate(value any) error {
	if r.re == nil {
		return nil
	}
	return validation.Match(r.re).Validate(value)
}

type stringRule struct {
	validation.StringRule
	desc string
}

// NewStringRule returns a string rule using desc as both the error message
// and the node description.
func NewStringRule(validator func(string) bool, desc string) Rule {
	return stringRule{
		validation.NewStringRule(validator, desc),
		desc,
	}
}

// NewStringRuleDecimalMax returns a rule that limits the number of decimal
// places in a numeric string.
func NewStringRuleDecimalMax(i uint) Rule {
	desc := fmt.Sprintf("no more than %d decimals", i)
	return NewStringRule(func(s string) bool {
		spl := strings.Split(s, ".")
		if len(spl) < 2 {
			return true
		}
		return len(spl[1]) <= int(i)
	}, desc)
}

func (r stringRule) Describe(s *Schema) error {
	appendDescription(s, r.desc)
	return nil
}
