package oasgen

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Category is a section of the document's components.
type Category string

// Component categories, in emission order.
const (
	CategorySchemas       Category = "schemas"
	CategoryParameters    Category = "parameters"
	CategoryResponses     Category = "responses"
	CategoryRequestBodies Category = "requestBodies"
)

// Categories lists every category in emission order.
var Categories = []Category{CategorySchemas, CategoryParameters, CategoryResponses, CategoryRequestBodies}

// componentName is the name pattern OpenAPI allows for component keys.
var componentName = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

func (c Category) valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Reference points at a registered component. It can be used wherever a
// schema type, parameter, response or request body is expected; the target
// does not have to exist until the document is built.
type Reference struct {
	Category Category
	Name     string
}

// Pointer returns the JSON pointer of the target, #/components/{category}/{name}.
func (r Reference) Pointer() string {
	return "#/components/" + string(r.Category) + "/" + r.Name
}

func (r Reference) String() string {
	return r.Pointer()
}

// SchemaRef references a schema component.
func SchemaRef(name string) Reference {
	return Reference{Category: CategorySchemas, Name: name}
}

// ParameterRef references a parameter component.
func ParameterRef(name string) Reference {
	return Reference{Category: CategoryParameters, Name: name}
}

// ResponseRef references a response component.
func ResponseRef(name string) Reference {
	return Reference{Category: CategoryResponses, Name: name}
}

// RequestBodyRef references a request body component.
func RequestBodyRef(name string) Reference {
	return Reference{Category: CategoryRequestBodies, Name: name}
}

// Registry holds the named reusable components of one document, each
// category in registration order.
type Registry struct {
	entries map[Category]*sequencedmap.Map[string, any]
	frozen  bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[Category]*sequencedmap.Map[string, any], len(Categories))}
	for _, c := range Categories {
		r.entries[c] = sequencedmap.New[string, any]()
	}
	return r
}

// Register adds a named component and returns a reference to it. The node
// must be a *Schema for schemas, a *Parameter for parameters, a *Response
// for responses and a *RequestBody for requestBodies.
func (r *Registry) Register(c Category, name string, node any) (Reference, error) {
	if r.frozen {
		return Reference{}, ErrFrozen
	}
	if !c.valid() {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}
	if err := validation.Validate(name, validation.Required, validation.Match(componentName)); err != nil {
		return Reference{}, fmt.Errorf("oasgen: component name %q: %w", name, err)
	}
	if err := checkNode(c, node); err != nil {
		return Reference{}, err
	}
	m := r.entries[c]
	if _, ok := m.Get(name); ok {
		return Reference{}, &DuplicateNameError{Category: c, Name: name}
	}
	m.Set(name, node)
	return Reference{Category: c, Name: name}, nil
}

func checkNode(c Category, node any) error {
	var ok, isNil bool
	switch c {
	case CategorySchemas:
		var v *Schema
		v, ok = node.(*Schema)
		isNil = v == nil
	case CategoryParameters:
		var v *Parameter
		v, ok = node.(*Parameter)
		isNil = v == nil
	case CategoryResponses:
		var v *Response
		v, ok = node.(*Response)
		isNil = v == nil
	case CategoryRequestBodies:
		var v *RequestBody
		v, ok = node.(*RequestBody)
		isNil = v == nil
	}
	switch {
	case node == nil || (ok && isNil):
		return ErrNilNode
	case !ok:
		return fmt.Errorf("%w: %T cannot be registered as %s", ErrInvalidCategory, node, c)
	}
	return nil
}

// Resolve returns the component registered under name.
func (r *Registry) Resolve(c Category, name string) (any, error) {
	m, ok := r.entries[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}
	node, ok := m.Get(name)
	if !ok {
		return nil, &UnknownReferenceError{Category: c, Name: name}
	}
	return node, nil
}

// ResolveRef resolves a reference.
func (r *Registry) ResolveRef(ref Reference) (any, error) {
	return r.Resolve(ref.Category, ref.Name)
}

// Has reports whether a component is registered under name.
func (r *Registry) Has(c Category, name string) bool {
	_, err := r.Resolve(c, name)
	return err == nil
}

// Names returns the names of a category in registration order.
func (r *Registry) Names(c Category) []string {
	m, ok := r.entries[c]
	if !ok {
		return nil
	}
	names := make([]string, 0, m.Len())
	for k := range m.All() {
		names = append(names, k)
	}
	return names
}

// Len returns the number of components in a category.
func (r *Registry) Len(c Category) int {
	if m, ok := r.entries[c]; ok {
		return m.Len()
	}
	return 0
}

// Freeze rejects any further registration with [ErrFrozen].
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether the registry was frozen.
func (r *Registry) Frozen() bool {
	return r.frozen
}
