package oasgen

type requiredRule struct {
	docOnly
}

// Required marks the node as a required property of its enclosing object.
// The object lists required fields in declaration order.
var Required = requiredRule{}

func (r requiredRule) Describe(s *Schema) error {
	s.Required = true
	return nil
}
