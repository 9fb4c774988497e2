package oasgen

type defaulter struct {
	docOnly
	a any
}

// Default returns a rule that sets the node default value. Like an example,
// the default is checked against the node's other rules.
func Default(a any) Rule {
	return defaulter{
		a: a,
	}
}

func (r defaulter) Describe(s *Schema) error {
	s.Default = r.a
	return nil
}
