package oasgen

import (
	"fmt"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// PathItem holds the operations of one path template.
type PathItem struct {
	Template    PathTemplate
	Summary     string
	Description string

	doc        *Document
	params     []ParameterSpec
	operations *sequencedmap.Map[Method, *Operation]
}

func newPathItem(doc *Document, t PathTemplate) *PathItem {
	return &PathItem{
		Template:   t,
		doc:        doc,
		operations: sequencedmap.New[Method, *Operation](),
	}
}

// Path returns the normalized template.
func (p *PathItem) Path() string {
	return p.Template.Path
}

// AddParameter adds a parameter shared by every operation of the path. A
// path parameter must name a placeholder of the template, and it replaces the
// parameter synthesized from an annotated placeholder.
func (p *PathItem) AddParameter(param ParameterSpec) error {
	if p.doc.frozen {
		return ErrFrozen
	}
	if param == nil {
		return ErrNilNode
	}
	if pp, ok := param.(*Parameter); ok {
		if pp == nil {
			return ErrNilNode
		}
		if pp.In == InPath {
			if !p.Template.Has(pp.Name) {
				return fmt.Errorf("%w: %q in %q", ErrPathParameterNotInTemplate, pp.Name, p.Template.Raw)
			}
			for _, other := range p.params {
				if o, ok := other.(*Parameter); ok && o.In == InPath && o.Name == pp.Name {
					return &DuplicatePathParameterError{Template: p.Template.Raw, Name: pp.Name}
				}
			}
		}
	}
	p.params = append(p.params, param)
	return nil
}

// Parameters returns the path-level parameters in declaration order.
func (p *PathItem) Parameters() []ParameterSpec {
	return append([]ParameterSpec(nil), p.params...)
}

// AddOperation declares the operation for method. body may be nil or
// [NoRequestBody]; a GET operation cannot have one.
func (p *PathItem) AddOperation(method Method, params []ParameterSpec, body RequestBodySpec, responses *Responses, opts ...OperationOption) (*Operation, error) {
	if p.doc.frozen {
		return nil, ErrFrozen
	}
	if !method.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if _, ok := p.operations.Get(method); ok {
		return nil, &MethodAlreadyDefinedError{Path: p.Path(), Method: method}
	}
	if responses.Len() == 0 {
		return nil, &EmptyResponsesError{Path: p.Path(), Method: method}
	}
	if method == MethodGet && hasBody(body) {
		return nil, ErrBodyNotAllowed
	}
	for _, param := range params {
		if param == nil {
			return nil, ErrNilNode
		}
		if pp, ok := param.(*Parameter); ok && pp == nil {
			return nil, ErrNilNode
		}
	}

	op := &Operation{
		Method:      method,
		Parameters:  append([]ParameterSpec(nil), params...),
		RequestBody: body,
		Responses:   responses,
	}
	for _, opt := range opts {
		opt(op)
	}
	p.operations.Set(method, op)
	return op, nil
}

// MustAddOperation is like [PathItem.AddOperation] but panics on error.
func (p *PathItem) MustAddOperation(method Method, params []ParameterSpec, body RequestBodySpec, responses *Responses, opts ...OperationOption) *Operation {
	op, err := p.AddOperation(method, params, body, responses, opts...)
	if err != nil {
		panic(err)
	}
	return op
}

// Operation returns the operation declared for method.
func (p *PathItem) Operation(method Method) (*Operation, bool) {
	return p.operations.Get(method)
}

// Operations returns the operations in declaration order.
func (p *PathItem) Operations() []*Operation {
	ops := make([]*Operation, 0, p.operations.Len())
	for _, op := range p.operations.All() {
		ops = append(ops, op)
	}
	return ops
}
