package oasgen

type accessRule struct {
	docOnly
	write bool
}

// ReadOnly marks the node as sent in responses only.
var ReadOnly = accessRule{}

// WriteOnly marks the node as sent in requests only.
var WriteOnly = accessRule{write: true}

func (r accessRule) Describe(s *Schema) error {
	if r.write {
		s.WriteOnly = true
	} else {
		s.ReadOnly = true
	}
	return nil
}
