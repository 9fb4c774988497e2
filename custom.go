package oasgen

type custom struct {
	f    func(any) error
	desc string
}

// Custom returns a rule that uses f for validation and desc for documentation.
func Custom(f func(any) error, desc string) Rule {
	return custom{
		f:    f,
		desc: desc,
	}
}

func (r custom) Describe(s *Schema) error {
	appendDescription(s, r.desc)
	return nil
}

func (r custom) Validate(value any) error {
	if r.f == nil {
		return nil
	}
	return r.f(value)
}
