package oasgen

// Schema is a node of the schema tree: a [Type] plus schema-level attributes.
// Build one with [NewSchema]; the attributes are set by rules such as
// [Required], [Length] or [Example]. A node is not modified after it is built.
//
// When Type is a [Reference] only the pointer is emitted, the node's other
// attributes are dropped since a $ref object carries no siblings. Required is
// the exception: it belongs to the enclosing object, not to the node.
type Schema struct {
	Type        Type
	Description string
	Format      string
	Pattern     string
	Example     any
	Default     any
	Enum        []any
	ReadOnly    bool
	WriteOnly   bool
	Required    bool
	Deprecated  bool
	Nullable    bool
	MinLength   *int
	MaxLength   *int
	Minimum     *float64
	Maximum     *float64
	MinItems    *int
	MaxItems    *int
	UniqueItems bool
}

// NewSchema builds a schema node of type t with the given rules applied in
// order. A nil t is the free-form [AnyType].
//
// Example and default values are checked against every rule and against the
// format of a primitive type, an [InvalidExampleError] is returned on mismatch.
func NewSchema(t Type, rules ...Rule) (*Schema, error) {
	if t == nil {
		t = AnyType{}
	}
	s := &Schema{Type: t}
	for _, r := range rules {
		if r == nil {
			continue
		}
		if err := r.Describe(s); err != nil {
			return nil, err
		}
	}
	if err := s.checkValues(rules); err != nil {
		return nil, err
	}
	return s, nil
}

// MustSchema is like [NewSchema] but panics on error.
func MustSchema(t Type, rules ...Rule) *Schema {
	s, err := NewSchema(t, rules...)
	if err != nil {
		panic(err)
	}
	return s
}

// IsReference reports whether the node points at a registered component.
func (s *Schema) IsReference() bool {
	_, ok := s.Type.(Reference)
	return ok
}

func (s *Schema) checkValues(rules []Rule) error {
	if s.IsReference() {
		return nil
	}
	checks := append([]Rule{typeRule{t: s.Type, format: s.format()}}, rules...)
	for _, v := range []struct {
		attr  string
		value any
	}{{"example", s.Example}, {"default", s.Default}} {
		if v.value == nil {
			continue
		}
		for _, r := range checks {
			if r == nil {
				continue
			}
			if err := r.Validate(v.value); err != nil {
				return &InvalidExampleError{Attribute: v.attr, Value: v.value, Err: err}
			}
		}
	}
	return nil
}

// format returns the effective format: an explicit override, or the
// primitive's own format.
func (s *Schema) format() string {
	if s.Format != "" {
		return s.Format
	}
	if p, ok := s.Type.(Primitive); ok {
		return p.Format
	}
	return ""
}

func intPtr(i int) *int {
	return &i
}
