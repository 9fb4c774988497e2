package oasgen

type example struct {
	docOnly
	ex any
}

// Example returns a rule that sets the node example. The example is checked
// against the node's other rules when the node is built.
func Example(ex any) Rule {
	return &example{ex: ex}
}

func (r *example) Describe(s *Schema) error {
	s.Example = r.ex
	return nil
}
