package oasgen

type deprecate struct {
	docOnly
}

// Deprecate returns a documentation-only rule that marks the node as deprecated.
func Deprecate() Rule {
	return &deprecate{}
}

func (r *deprecate) Describe(s *Schema) error {
	s.Deprecated = true
	return nil
}
