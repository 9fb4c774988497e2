package openapi

import (
	"errors"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/Gobd/oasgen"
)

// Response describes an HTTP response with a description and its JSON body
// schemas. Several bodies are combined with oneOf over their types and must
// not carry attributes of their own.
type Response struct {
	Desc   string
	Bodies []*oasgen.Schema
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Tags        []string
	Params      []oasgen.ParameterSpec
	Request     *oasgen.Schema      // single request body schema (convenience)
	Requests    []*oasgen.Schema    // multiple request body schemas (oneOf)
	Response    *oasgen.Schema      // single 200 response schema (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// ErrBodyAttributes is returned when schemas combined with oneOf carry
// attributes beyond their type. A oneOf member is a type, so those attributes
// would be lost.
var ErrBodyAttributes = errors.New("openapi: schemas combined with oneOf cannot carry attributes")

// body returns the single schema, or a oneOf over the schemas' types.
func body(schemas []*oasgen.Schema) (*oasgen.Schema, error) {
	if len(schemas) == 0 {
		return nil, errors.New("openapi: no schemas given")
	}
	if len(schemas) == 1 {
		return schemas[0], nil
	}
	types := make([]oasgen.Type, 0, len(schemas))
	for _, s := range schemas {
		if s == nil {
			return nil, oasgen.ErrNilNode
		}
		if !reflect.DeepEqual(*s, oasgen.Schema{Type: s.Type}) {
			return nil, ErrBodyAttributes
		}
		types = append(types, s.Type)
	}
	t, err := oasgen.OneOf(types...)
	if err != nil {
		return nil, err
	}
	return oasgen.NewSchema(t)
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(schemas ...*oasgen.Schema) *oasgen.RequestBody {
	o, err := NewRequest(schemas...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest returns a required JSON request body. Several schemas are
// combined with oneOf.
func NewRequest(schemas ...*oasgen.Schema) (*oasgen.RequestBody, error) {
	s, err := body(schemas)
	if err != nil {
		return nil, err
	}
	return oasgen.NewRequestBody("", true, oasgen.JSONContent(s))
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4XX", "default").
func NewResponseMust(vs map[string]Response) *oasgen.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates a response set from a map keyed by status code
// (e.g. "200", "4XX", "default"). Keys are emitted in ascending order with
// default last.
func NewResponse(vs map[string]Response) (*oasgen.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("openapi: no values given")
	}

	keys := make([]string, 0, len(vs))
	for k := range vs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[j] == "default" {
			return keys[i] != "default"
		}
		if keys[i] == "default" {
			return false
		}
		return strings.ToUpper(keys[i]) < strings.ToUpper(keys[j])
	})

	entries := make([]oasgen.ResponseEntry, 0, len(vs))
	for _, statusCode := range keys {
		v := vs[statusCode]
		desc := v.Desc
		if desc == "" {
			desc = "Response"
		}

		var opts []oasgen.ResponseOption
		if len(v.Bodies) > 0 {
			s, err := body(v.Bodies)
			if err != nil {
				return nil, err
			}
			opts = append(opts, oasgen.WithJSON(s))
		}
		r, err := oasgen.NewResponse(desc, opts...)
		if err != nil {
			return nil, err
		}

		switch code, err := strconv.Atoi(statusCode); {
		case statusCode == "default":
			entries = append(entries, oasgen.DefaultResponse(r))
		case err == nil:
			entries = append(entries, oasgen.Status(code, r))
		default:
			entries = append(entries, oasgen.StatusRange(statusCode, r))
		}
	}

	return oasgen.NewResponses(entries...)
}

// DocBase returns an empty document with the given title, description and version.
func DocBase(serviceName, description, version string) (*oasgen.Document, error) {
	return oasgen.NewDocument(oasgen.Info{
		Title:       serviceName,
		Description: description,
		Version:     version,
	})
}

// AddPath returns the path item of the template, declaring it on first use.
func AddPath(doc *oasgen.Document, template string) (*oasgen.PathItem, error) {
	t, err := oasgen.ParsePathTemplate(template)
	if err != nil {
		return nil, err
	}
	if p, ok := doc.Path(t.Path); ok {
		return p, nil
	}
	return doc.AddPath(template)
}

// addEndpoint builds an operation from ep and declares it at path+method.
func addEndpoint(doc *oasgen.Document, path string, method oasgen.Method, operationID string, ep Endpoint) (*oasgen.Operation, error) {
	var rb oasgen.RequestBodySpec = oasgen.NoRequestBody
	switch {
	case len(ep.Requests) > 0:
		b, err := NewRequest(ep.Requests...)
		if err != nil {
			return nil, err
		}
		rb = b
	case ep.Request != nil:
		b, err := NewRequest(ep.Request)
		if err != nil {
			return nil, err
		}
		rb = b
	}

	if method == oasgen.MethodGet && rb != oasgen.NoRequestBody {
		return nil, oasgen.ErrBodyNotAllowed
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []*oasgen.Schema{ep.Response}},
		}
	}
	if responses == nil {
		responses = map[string]Response{"200": {Desc: "OK"}}
	}
	rs, err := NewResponse(responses)
	if err != nil {
		return nil, err
	}

	item, err := AddPath(doc, path)
	if err != nil {
		return nil, err
	}
	return item.AddOperation(method, ep.Params, rb, rs,
		oasgen.WithOperationID(operationID),
		oasgen.WithSummary(ep.Summary),
		oasgen.WithDescription(ep.Description),
		oasgen.WithTags(ep.Tags...),
	)
}

// Get declares a GET endpoint on doc.
func Get(doc *oasgen.Document, path, operationID string, ep Endpoint) (*oasgen.Operation, error) {
	return addEndpoint(doc, path, oasgen.MethodGet, operationID, ep)
}

// Post declares a POST endpoint on doc.
func Post(doc *oasgen.Document, path, operationID string, ep Endpoint) (*oasgen.Operation, error) {
	return addEndpoint(doc, path, oasgen.MethodPost, operationID, ep)
}

// Put declares a PUT endpoint on doc.
func Put(doc *oasgen.Document, path, operationID string, ep Endpoint) (*oasgen.Operation, error) {
	return addEndpoint(doc, path, oasgen.MethodPut, operationID, ep)
}

// Patch declares a PATCH endpoint on doc.
func Patch(doc *oasgen.Document, path, operationID string, ep Endpoint) (*oasgen.Operation, error) {
	return addEndpoint(doc, path, oasgen.MethodPatch, operationID, ep)
}

// Delete declares a DELETE endpoint on doc.
func Delete(doc *oasgen.Document, path, operationID string, ep Endpoint) (*oasgen.Operation, error) {
	return addEndpoint(doc, path, oasgen.MethodDelete, operationID, ep)
}
