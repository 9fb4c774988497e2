package oasgen

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Gobd/oasgen/transform"
)

// Location is where a parameter is carried.
type Location string

// Parameter locations.
const (
	InPath   Location = "path"
	InQuery  Location = "query"
	InHeader Location = "header"
	InCookie Location = "cookie"
)

// ParameterSpec is a [*Parameter] or a [Reference] to a registered one.
type ParameterSpec interface {
	parameterSpec()
}

func (*Parameter) parameterSpec() {}
func (Reference) parameterSpec()  {}

// Parameter is an operation parameter.
type Parameter struct {
	Name            string
	In              Location
	Description     string
	Required        bool
	Deprecated      bool
	AllowEmptyValue bool
	AllowReserved   bool
	Schema          *Schema
	Example         any
}

// ParameterOption configures a [Parameter].
type ParameterOption func(*Parameter)

// ParamDescription sets the parameter description.
func ParamDescription(desc string) ParameterOption {
	return func(p *Parameter) {
		p.Description = transform.CollapseSpace(desc)
	}
}

// ParamRequired marks the parameter as required. Path parameters always are.
func ParamRequired() ParameterOption {
	return func(p *Parameter) {
		p.Required = true
	}
}

// ParamDeprecated marks the parameter as deprecated.
func ParamDeprecated() ParameterOption {
	return func(p *Parameter) {
		p.Deprecated = true
	}
}

// ParamAllowEmptyValue allows an empty value for a query parameter.
func ParamAllowEmptyValue() ParameterOption {
	return func(p *Parameter) {
		p.AllowEmptyValue = true
	}
}

// ParamAllowReserved allows reserved characters in a query parameter value.
func ParamAllowReserved() ParameterOption {
	return func(p *Parameter) {
		p.AllowReserved = true
	}
}

// ParamExample sets the parameter example.
func ParamExample(v any) ParameterOption {
	return func(p *Parameter) {
		p.Example = v
	}
}

// NewParameter declares a parameter. A path parameter is always required.
func NewParameter(name string, in Location, schema *Schema, opts ...ParameterOption) (*Parameter, error) {
	p := &Parameter{
		Name:   name,
		In:     in,
		Schema: schema,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.In == InPath {
		p.Required = true
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustParameter is like [NewParameter] but panics on error.
func MustParameter(name string, in Location, schema *Schema, opts ...ParameterOption) *Parameter {
	p, err := NewParameter(name, in, schema, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// PathParam declares a path parameter.
func PathParam(name string, schema *Schema, opts ...ParameterOption) (*Parameter, error) {
	return NewParameter(name, InPath, schema, opts...)
}

// QueryParam declares a query parameter.
func QueryParam(name string, schema *Schema, opts ...ParameterOption) (*Parameter, error) {
	return NewParameter(name, InQuery, schema, opts...)
}

// HeaderParam declares a header parameter.
func HeaderParam(name string, schema *Schema, opts ...ParameterOption) (*Parameter, error) {
	return NewParameter(name, InHeader, schema, opts...)
}

// CookieParam declares a cookie parameter.
func CookieParam(name string, schema *Schema, opts ...ParameterOption) (*Parameter, error) {
	return NewParameter(name, InCookie, schema, opts...)
}

// Validate checks the shape of the parameter and returns [ValidationErrors].
func (p Parameter) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Match(paramName)),
		validation.Field(&p.In, validation.Required, validation.In(InPath, InQuery, InHeader, InCookie)),
		validation.Field(&p.Schema, validation.NotNil),
	)
}
