package oasgen

type nullableRule struct {
	docOnly
}

// Nullable allows null in addition to the node's type.
var Nullable = nullableRule{}

func (r nullableRule) Describe(s *Schema) error {
	s.Nullable = true
	return nil
}
