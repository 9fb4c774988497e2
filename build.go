package oasgen

import (
	"fmt"

	"github.com/Gobd/oasgen/encode"
)

// Build assembles the document into an ordered mapping ready to be encoded.
// References are resolved against the registry and every path placeholder
// must be matched by a path parameter. On success the document and its
// registry are frozen; later declarations return [ErrFrozen].
//
// Build fails on the first error and never returns a partial document.
func (d *Document) Build() (*encode.Map, error) {
	b := &builder{doc: d, operationIDs: map[string]string{}}
	m, err := b.document()
	if err != nil {
		return nil, err
	}
	d.frozen = true
	d.registry.Freeze()
	return m, nil
}

// MustBuild is like [Document.Build] but panics on error.
func (d *Document) MustBuild() *encode.Map {
	m, err := d.Build()
	if err != nil {
		panic(err)
	}
	return m
}

type builder struct {
	doc          *Document
	operationIDs map[string]string
}

func (b *builder) document() (*encode.Map, error) {
	m := encode.NewMap()
	m.Set("openapi", Version)
	m.Set("info", b.info(b.doc.info))

	servers := b.doc.servers
	if len(servers) == 0 {
		servers = []Server{DefaultServer}
	}
	list := make([]any, 0, len(servers))
	for _, s := range servers {
		list = append(list, b.server(s))
	}
	m.Set("servers", list)

	paths := encode.NewMap()
	for path, item := range b.doc.paths.All() {
		pm, err := b.pathItem(item)
		if err != nil {
			return nil, err
		}
		paths.Set(path, pm)
	}
	m.Set("paths", paths)

	components, err := b.components()
	if err != nil {
		return nil, err
	}
	m.Set("components", components)
	return m, nil
}

func (b *builder) info(i Info) *encode.Map {
	m := encode.NewMap()
	m.Set("title", i.Title)
	setString(m, "description", i.Description)
	setString(m, "termsOfService", i.TermsOfService)
	if c := i.Contact; c != nil {
		cm := encode.NewMap()
		setString(cm, "name", c.Name)
		setString(cm, "url", c.URL)
		setString(cm, "email", c.Email)
		m.Set("contact", cm)
	}
	if l := i.License; l != nil {
		lm := encode.NewMap()
		lm.Set("name", l.Name)
		setString(lm, "url", l.URL)
		m.Set("license", lm)
	}
	m.Set("version", i.Version)
	return m
}

func (b *builder) server(s Server) *encode.Map {
	m := encode.NewMap()
	m.Set("url", s.URL)
	setString(m, "description", s.Description)
	if len(s.Variables) > 0 {
		vars := encode.NewMap()
		for _, v := range s.Variables {
			vm := encode.NewMap()
			if len(v.Enum) > 0 {
				vm.Set("enum", anyList(v.Enum))
			}
			vm.Set("default", v.Default)
			setString(vm, "description", v.Description)
			vars.Set(v.Name, vm)
		}
		m.Set("variables", vars)
	}
	return m
}

func (b *builder) components() (*encode.Map, error) {
	r := b.doc.registry
	m := encode.NewMap()
	for _, c := range Categories {
		if r.Len(c) == 0 {
			continue
		}
		cm := encode.NewMap()
		for name, node := range r.entries[c].All() {
			var (
				v   any
				err error
			)
			switch n := node.(type) {
			case *Schema:
				v, err = b.schema(n)
			case *Parameter:
				v, err = b.parameterValue(n)
			case *Response:
				v, err = b.responseValue(n)
			case *RequestBody:
				v, err = b.requestBodyValue(n)
			}
			if err != nil {
				return nil, err
			}
			cm.Set(name, v)
		}
		m.Set(string(c), cm)
	}
	return m, nil
}

// resolvedParam is a parameter as declared next to the parameter it stands
// for, which differs when the declaration is a reference.
type resolvedParam struct {
	spec  ParameterSpec
	param *Parameter
}

func (b *builder) resolveParam(spec ParameterSpec) (resolvedParam, error) {
	switch p := spec.(type) {
	case *Parameter:
		return resolvedParam{spec: p, param: p}, nil
	case Reference:
		if p.Category != CategoryParameters {
			return resolvedParam{}, fmt.Errorf("%w: %s used as a parameter", ErrInvalidCategory, p.Pointer())
		}
		node, err := b.doc.registry.ResolveRef(p)
		if err != nil {
			return resolvedParam{}, err
		}
		return resolvedParam{spec: p, param: node.(*Parameter)}, nil
	}
	return resolvedParam{}, ErrNilNode
}

// pathParams returns the parameters shared by every operation of the item:
// one per placeholder in template order, explicit parameters replacing the
// ones synthesized from annotations, then the remaining path-level
// parameters in declaration order.
func (b *builder) pathParams(item *PathItem) ([]resolvedParam, error) {
	explicit := make([]resolvedParam, 0, len(item.params))
	for _, spec := range item.params {
		rp, err := b.resolveParam(spec)
		if err != nil {
			return nil, err
		}
		if err := b.checkPathParam(item, rp.param); err != nil {
			return nil, err
		}
		explicit = append(explicit, rp)
	}

	used := make([]bool, len(explicit))
	var out []resolvedParam
	for _, tp := range item.Template.Params {
		found := false
		for i, rp := range explicit {
			if !used[i] && rp.param.In == InPath && rp.param.Name == tp.Name {
				out = append(out, rp)
				used[i] = true
				found = true
				break
			}
		}
		if found || tp.Annotation == "" {
			continue
		}
		p := &Parameter{
			Name:     tp.Name,
			In:       InPath,
			Required: true,
			Schema:   &Schema{Type: annotationType(tp.Annotation)},
		}
		out = append(out, resolvedParam{spec: p, param: p})
	}
	for i, rp := range explicit {
		if !used[i] {
			out = append(out, rp)
		}
	}
	return out, nil
}

func (b *builder) checkPathParam(item *PathItem, p *Parameter) error {
	if p.In == InPath && !item.Template.Has(p.Name) {
		return fmt.Errorf("%w: %q in %q", ErrPathParameterNotInTemplate, p.Name, item.Template.Raw)
	}
	return nil
}

func coversPath(params []resolvedParam, name string) bool {
	for _, rp := range params {
		if rp.param.In == InPath && rp.param.Name == name {
			return true
		}
	}
	return false
}

func (b *builder) pathItem(item *PathItem) (*encode.Map, error) {
	shared, err := b.pathParams(item)
	if err != nil {
		return nil, err
	}

	ops := item.Operations()
	opParams := make([][]resolvedParam, len(ops))
	for i, op := range ops {
		for _, spec := range op.Parameters {
			rp, err := b.resolveParam(spec)
			if err != nil {
				return nil, err
			}
			if err := b.checkPathParam(item, rp.param); err != nil {
				return nil, err
			}
			opParams[i] = append(opParams[i], rp)
		}
	}

	for _, tp := range item.Template.Params {
		if coversPath(shared, tp.Name) {
			continue
		}
		covered := len(ops) > 0
		for i := range ops {
			if !coversPath(opParams[i], tp.Name) {
				covered = false
				break
			}
		}
		if !covered {
			return nil, &UnresolvedPathParameterError{Path: item.Path(), Name: tp.Name}
		}
	}

	m := encode.NewMap()
	setString(m, "summary", item.Summary)
	setString(m, "description", item.Description)
	for i, op := range ops {
		om, err := b.operation(item, op, append(append([]resolvedParam(nil), shared...), opParams[i]...))
		if err != nil {
			return nil, err
		}
		m.Set(string(op.Method), om)
	}
	return m, nil
}

func (b *builder) operation(item *PathItem, op *Operation, params []resolvedParam) (*encode.Map, error) {
	if op.OperationID != "" {
		at := fmt.Sprintf("%s %s", op.Method, item.Path())
		if first, ok := b.operationIDs[op.OperationID]; ok {
			return nil, &DuplicateOperationIDError{OperationID: op.OperationID, First: first, Second: at}
		}
		b.operationIDs[op.OperationID] = at
	}

	m := encode.NewMap()
	if len(op.Tags) > 0 {
		m.Set("tags", anyList(op.Tags))
	}
	setString(m, "summary", op.Summary)
	setString(m, "description", op.Description)
	setString(m, "operationId", op.OperationID)
	if len(params) > 0 {
		list := make([]any, 0, len(params))
		for _, rp := range params {
			v, err := b.parameter(rp.spec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		m.Set("parameters", list)
	}
	if hasBody(op.RequestBody) {
		v, err := b.requestBody(op.RequestBody)
		if err != nil {
			return nil, err
		}
		m.Set("requestBody", v)
	}
	responses, err := b.responses(op.Responses)
	if err != nil {
		return nil, err
	}
	m.Set("responses", responses)
	setBool(m, "deprecated", op.Deprecated)
	return m, nil
}

func (b *builder) parameter(spec ParameterSpec) (any, error) {
	switch p := spec.(type) {
	case *Parameter:
		return b.parameterValue(p)
	case Reference:
		return b.ref(p, CategoryParameters)
	}
	return nil, ErrNilNode
}

func (b *builder) parameterValue(p *Parameter) (*encode.Map, error) {
	m := encode.NewMap()
	m.Set("name", p.Name)
	m.Set("in", string(p.In))
	setString(m, "description", p.Description)
	setBool(m, "required", p.Required || p.In == InPath)
	setBool(m, "deprecated", p.Deprecated)
	setBool(m, "allowEmptyValue", p.AllowEmptyValue)
	setBool(m, "allowReserved", p.AllowReserved)
	s, err := b.schema(p.Schema)
	if err != nil {
		return nil, err
	}
	m.Set("schema", s)
	if p.Example != nil {
		m.Set("example", p.Example)
	}
	return m, nil
}

func (b *builder) requestBody(spec RequestBodySpec) (any, error) {
	switch r := spec.(type) {
	case *RequestBody:
		return b.requestBodyValue(r)
	case Reference:
		return b.ref(r, CategoryRequestBodies)
	}
	return nil, ErrNilNode
}

func (b *builder) requestBodyValue(r *RequestBody) (*encode.Map, error) {
	m := encode.NewMap()
	setString(m, "description", r.Description)
	c, err := b.content(r.Content)
	if err != nil {
		return nil, err
	}
	m.Set("content", c)
	setBool(m, "required", r.Required)
	return m, nil
}

func (b *builder) content(c *Content) (*encode.Map, error) {
	m := encode.NewMap()
	if c == nil {
		return m, nil
	}
	for name, mt := range c.All() {
		mm := encode.NewMap()
		s, err := b.schema(mt.Schema)
		if err != nil {
			return nil, err
		}
		mm.Set("schema", s)
		if mt.Example != nil {
			mm.Set("example", mt.Example)
		}
		m.Set(name, mm)
	}
	return m, nil
}

func (b *builder) responses(r *Responses) (*encode.Map, error) {
	m := encode.NewMap()
	if r == nil {
		return m, nil
	}
	for key, spec := range r.entries.All() {
		var (
			v   any
			err error
		)
		switch resp := spec.(type) {
		case *Response:
			v, err = b.responseValue(resp)
		case Reference:
			v, err = b.ref(resp, CategoryResponses)
		}
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	return m, nil
}

func (b *builder) responseValue(r *Response) (*encode.Map, error) {
	m := encode.NewMap()
	m.Set("description", r.Description)
	if r.Headers != nil && r.Headers.Len() > 0 {
		hm := encode.NewMap()
		for name, h := range r.Headers.All() {
			v := encode.NewMap()
			setString(v, "description", h.Description)
			setBool(v, "required", h.Required)
			setBool(v, "deprecated", h.Deprecated)
			s, err := b.schema(h.Schema)
			if err != nil {
				return nil, err
			}
			v.Set("schema", s)
			hm.Set(name, v)
		}
		m.Set("headers", hm)
	}
	if r.Content != nil && r.Content.Len() > 0 {
		c, err := b.content(r.Content)
		if err != nil {
			return nil, err
		}
		m.Set("content", c)
	}
	return m, nil
}

// ref renders a reference after checking that its target exists in the
// expected category.
func (b *builder) ref(r Reference, want Category) (*encode.Map, error) {
	if r.Category != want {
		return nil, fmt.Errorf("%w: %s used in %s", ErrInvalidCategory, r.Pointer(), want)
	}
	if _, err := b.doc.registry.ResolveRef(r); err != nil {
		return nil, err
	}
	m := encode.NewMap()
	m.Set("$ref", r.Pointer())
	return m, nil
}

// schema renders a schema node. A reference node renders as the bare $ref.
func (b *builder) schema(s *Schema) (*encode.Map, error) {
	if s == nil {
		return nil, ErrNilNode
	}
	if r, ok := s.Type.(Reference); ok {
		return b.ref(r, CategorySchemas)
	}

	m := encode.NewMap()
	if p, ok := s.Type.(Primitive); ok {
		m.Set("type", string(p.Kind))
	} else if name := containerType(s.Type); name != "" {
		m.Set("type", name)
	}
	setString(m, "format", s.format())
	setString(m, "description", s.Description)
	setBool(m, "nullable", s.Nullable)
	if len(s.Enum) > 0 {
		m.Set("enum", append([]any(nil), s.Enum...))
	}
	if s.Default != nil {
		m.Set("default", s.Default)
	}
	setString(m, "pattern", s.Pattern)
	setInt(m, "minLength", s.MinLength)
	setInt(m, "maxLength", s.MaxLength)
	if s.Minimum != nil {
		m.Set("minimum", *s.Minimum)
	}
	if s.Maximum != nil {
		m.Set("maximum", *s.Maximum)
	}

	if err := b.typeBody(m, s.Type); err != nil {
		return nil, err
	}

	setInt(m, "minItems", s.MinItems)
	setInt(m, "maxItems", s.MaxItems)
	setBool(m, "uniqueItems", s.UniqueItems)
	setBool(m, "readOnly", s.ReadOnly)
	setBool(m, "writeOnly", s.WriteOnly)
	setBool(m, "deprecated", s.Deprecated)
	if s.Example != nil {
		m.Set("example", s.Example)
	}
	return m, nil
}

func containerType(t Type) string {
	switch t.(type) {
	case *ObjectType:
		return "object"
	case ArraySingle, ArrayUnion, ArrayAny:
		return "array"
	}
	return ""
}

// typeBody adds the structural keys of composite types: items, oneOf,
// properties and required.
func (b *builder) typeBody(m *encode.Map, t Type) error {
	switch t := t.(type) {
	case ArraySingle:
		item, err := b.typeSchema(t.Item)
		if err != nil {
			return err
		}
		m.Set("items", item)
	case ArrayUnion:
		members, err := b.typeSchemas(t.Items)
		if err != nil {
			return err
		}
		items := encode.NewMap()
		items.Set("oneOf", members)
		m.Set("items", items)
	case ArrayAny:
		m.Set("items", encode.NewMap())
	case OneOfType:
		members, err := b.typeSchemas(t.Members)
		if err != nil {
			return err
		}
		m.Set("oneOf", members)
	case *ObjectType:
		if len(t.fields) > 0 {
			props := encode.NewMap()
			for _, f := range t.fields {
				v, err := b.schema(f.Schema)
				if err != nil {
					return err
				}
				props.Set(f.Name, v)
			}
			m.Set("properties", props)
		}
		if req := t.Required(); len(req) > 0 {
			m.Set("required", anyList(req))
		}
	}
	return nil
}

func (b *builder) typeSchema(t Type) (*encode.Map, error) {
	return b.schema(&Schema{Type: t})
}

func (b *builder) typeSchemas(types []Type) ([]any, error) {
	out := make([]any, 0, len(types))
	for _, t := range types {
		v, err := b.typeSchema(t)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func setString(m *encode.Map, key, v string) {
	if v != "" {
		m.Set(key, v)
	}
}

func setBool(m *encode.Map, key string, v bool) {
	if v {
		m.Set(key, true)
	}
}

func setInt(m *encode.Map, key string, v *int) {
	if v != nil {
		m.Set(key, *v)
	}
}

func anyList(list []string) []any {
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = s
	}
	return out
}
