package oasgen

import (
	"reflect"
)

// Type is the value type of a schema node. It is a closed set implemented by
// [Primitive], [*ObjectType], [ArraySingle], [ArrayUnion], [ArrayAny],
// [AnyType], [OneOfType] and [Reference].
type Type interface {
	isType()
}

func (Primitive) isType()   {}
func (*ObjectType) isType() {}
func (ArraySingle) isType() {}
func (ArrayUnion) isType()  {}
func (ArrayAny) isType()    {}
func (AnyType) isType()     {}
func (OneOfType) isType()   {}
func (Reference) isType()   {}

// Field is a named property of an object type.
type Field struct {
	Name   string
	Schema *Schema
}

// ObjectType is an object with properties in declaration order.
type ObjectType struct {
	fields []Field
}

// Fields returns a copy of the object's fields in declaration order.
func (o *ObjectType) Fields() []Field {
	return append([]Field(nil), o.fields...)
}

// Field returns the schema of the named field.
func (o *ObjectType) Field(name string) (*Schema, bool) {
	for _, f := range o.fields {
		if f.Name == name {
			return f.Schema, true
		}
	}
	return nil, false
}

// Required returns the names of fields marked required, in declaration order.
func (o *ObjectType) Required() []string {
	var names []string
	for _, f := range o.fields {
		if f.Schema != nil && f.Schema.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// ArraySingle is an array whose items all share one type.
type ArraySingle struct {
	Item Type
}

// ArrayUnion is an array whose items may be any of two or more distinct types.
type ArrayUnion struct {
	Items []Type
}

// ArrayAny is an array of arbitrary items.
type ArrayAny struct{}

// AnyType is a free-form value. It renders as the empty schema {}.
type AnyType struct{}

// OneOfType is a value matching exactly one of two or more distinct types.
type OneOfType struct {
	Members []Type
}

// Any returns the free-form type.
func Any() Type {
	return AnyType{}
}

// AnyArray returns an array of arbitrary items.
func AnyArray() Type {
	return ArrayAny{}
}

// Equal reports whether two types are structurally equal.
func Equal(a, b Type) bool {
	return reflect.DeepEqual(a, b)
}

// distinct drops nil and structurally repeated members, keeping first-seen order.
func distinct(members []Type) []Type {
	out := make([]Type, 0, len(members))
	for _, m := range members {
		if m == nil {
			continue
		}
		seen := false
		for _, o := range out {
			if Equal(o, m) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, m)
		}
	}
	return out
}

// Array builds an array type from its member types. Members are de-duplicated
// by structural equality before the variant is chosen: one distinct member
// gives [ArraySingle], more give [ArrayUnion]. An [AnyType] member makes the
// whole array [ArrayAny].
func Array(members ...Type) (Type, error) {
	d := distinct(members)
	if len(d) == 0 {
		return nil, &EmptyArrayMembersError{}
	}
	for _, m := range d {
		if _, ok := m.(AnyType); ok {
			return ArrayAny{}, nil
		}
	}
	if len(d) == 1 {
		return ArraySingle{Item: d[0]}, nil
	}
	return ArrayUnion{Items: d}, nil
}

// MustArray is like [Array] but panics on error.
func MustArray(members ...Type) Type {
	t, err := Array(members...)
	if err != nil {
		panic(err)
	}
	return t
}

// OneOf builds a oneOf type with the same de-duplication as [Array]. A single
// distinct member is returned as is.
func OneOf(members ...Type) (Type, error) {
	d := distinct(members)
	switch len(d) {
	case 0:
		return nil, &EmptyArrayMembersError{}
	case 1:
		return d[0], nil
	}
	return OneOfType{Members: d}, nil
}

// ObjectBuilder collects object fields in declaration order. The first error
// is kept and returned by [ObjectBuilder.Build].
type ObjectBuilder struct {
	fields []Field
	seen   map[string]struct{}
	err    error
}

// NewObject starts an object type declaration.
func NewObject() *ObjectBuilder {
	return &ObjectBuilder{seen: make(map[string]struct{})}
}

// Field adds a named field.
func (b *ObjectBuilder) Field(name string, s *Schema) *ObjectBuilder {
	if b.err != nil {
		return b
	}
	if s == nil {
		b.err = ErrNilNode
		return b
	}
	if _, dup := b.seen[name]; dup {
		b.err = &DuplicateFieldError{Field: name}
		return b
	}
	b.seen[name] = struct{}{}
	b.fields = append(b.fields, Field{Name: name, Schema: s})
	return b
}

// Build returns the object type.
func (b *ObjectBuilder) Build() (*ObjectType, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &ObjectType{fields: append([]Field(nil), b.fields...)}, nil
}

// Object builds an object type from fields in order.
func Object(fields ...Field) (*ObjectType, error) {
	b := NewObject()
	for _, f := range fields {
		b.Field(f.Name, f.Schema)
	}
	return b.Build()
}

// MustObject is like [Object] but panics on error.
func MustObject(fields ...Field) *ObjectType {
	o, err := Object(fields...)
	if err != nil {
		panic(err)
	}
	return o
}
