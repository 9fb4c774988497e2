package oasgen

import (
	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/Gobd/oasgen/transform"
)

// Version is the OpenAPI version of every emitted document.
const Version = "3.0.0"

// Document is the root of an API description. It owns its paths, servers
// and component registry; declarations are checked as they are made and
// references are resolved when the document is built.
type Document struct {
	info     Info
	servers  []Server
	paths    *sequencedmap.Map[string, *PathItem]
	registry *Registry
	frozen   bool
}

// DocumentOption configures a [Document].
type DocumentOption func(*Document) error

// WithServer declares a server, see [Document.AddServer].
func WithServer(url, description string, vars ...ServerVariable) DocumentOption {
	return func(d *Document) error {
		return d.AddServer(url, description, vars...)
	}
}

// NewDocument returns an empty document. Info strings are trimmed and the
// description has its whitespace collapsed.
func NewDocument(info Info, opts ...DocumentOption) (*Document, error) {
	if info.Contact != nil {
		c := *info.Contact
		info.Contact = &c
	}
	if info.License != nil {
		l := *info.License
		info.License = &l
	}
	transform.StructTrimSpace(&info)
	info.Description = transform.CollapseSpace(info.Description)
	if err := info.Validate(); err != nil {
		return nil, err
	}
	d := &Document{
		info:     info,
		paths:    sequencedmap.New[string, *PathItem](),
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// MustNewDocument is like [NewDocument] but panics on error.
func MustNewDocument(info Info, opts ...DocumentOption) *Document {
	d, err := NewDocument(info, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Info returns the document metadata.
func (d *Document) Info() Info {
	return d.info
}

// Registry returns the component registry of the document.
func (d *Document) Registry() *Registry {
	return d.registry
}

// AddServer declares a server. Its strings have their whitespace collapsed.
// Servers are emitted in declaration order.
func (d *Document) AddServer(url, description string, vars ...ServerVariable) error {
	if d.frozen {
		return ErrFrozen
	}
	s := Server{
		URL:         url,
		Description: description,
		Variables:   append([]ServerVariable(nil), vars...),
	}
	transform.StructCollapseSpace(&s)
	if err := s.Validate(); err != nil {
		return err
	}
	d.servers = append(d.servers, s)
	return nil
}

// Servers returns the declared servers. The default server that is emitted
// for a document without servers is not included.
func (d *Document) Servers() []Server {
	return append([]Server(nil), d.servers...)
}

// AddPath declares a path from a template such as "/pets/{id:Int64}". Two
// templates that normalize to the same path are rejected.
func (d *Document) AddPath(template string) (*PathItem, error) {
	if d.frozen {
		return nil, ErrFrozen
	}
	t, err := ParsePathTemplate(template)
	if err != nil {
		return nil, err
	}
	if _, ok := d.paths.Get(t.Path); ok {
		return nil, &DuplicatePathError{Path: t.Path}
	}
	p := newPathItem(d, t)
	d.paths.Set(t.Path, p)
	return p, nil
}

// MustAddPath is like [Document.AddPath] but panics on error.
func (d *Document) MustAddPath(template string) *PathItem {
	p, err := d.AddPath(template)
	if err != nil {
		panic(err)
	}
	return p
}

// Path returns the path item of a normalized path.
func (d *Document) Path(path string) (*PathItem, bool) {
	return d.paths.Get(path)
}

// Paths returns the path items in declaration order.
func (d *Document) Paths() []*PathItem {
	items := make([]*PathItem, 0, d.paths.Len())
	for _, p := range d.paths.All() {
		items = append(items, p)
	}
	return items
}

// RegisterSchema registers a reusable schema.
func (d *Document) RegisterSchema(name string, s *Schema) (Reference, error) {
	return d.registry.Register(CategorySchemas, name, s)
}

// RegisterParameter registers a reusable parameter.
func (d *Document) RegisterParameter(name string, p *Parameter) (Reference, error) {
	return d.registry.Register(CategoryParameters, name, p)
}

// RegisterResponse registers a reusable response.
func (d *Document) RegisterResponse(name string, r *Response) (Reference, error) {
	return d.registry.Register(CategoryResponses, name, r)
}

// RegisterRequestBody registers a reusable request body.
func (d *Document) RegisterRequestBody(name string, b *RequestBody) (Reference, error) {
	return d.registry.Register(CategoryRequestBodies, name, b)
}

// Frozen reports whether the document was built and no longer accepts
// declarations.
func (d *Document) Frozen() bool {
	return d.frozen
}
