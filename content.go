package oasgen

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/Gobd/oasgen/transform"
)

// Common media types.
const (
	MediaJSON           = "application/json"
	MediaXML            = "application/xml"
	MediaPDF            = "application/pdf"
	MediaFormURLEncoded = "application/x-www-form-urlencoded"
	MediaMultipart      = "multipart/form-data"
	MediaText           = "text/plain; charset=utf-8"
	MediaHTML           = "text/html"
	MediaPNG            = "image/png"
)

// MediaType is the schema of a body in one media type.
type MediaType struct {
	Name    string
	Schema  *Schema
	Example any
}

// Media returns the body schema s for the media type name.
func Media(name string, s *Schema) MediaType {
	return MediaType{Name: name, Schema: s}
}

// JSONContent is Media(MediaJSON, s).
func JSONContent(s *Schema) MediaType {
	return Media(MediaJSON, s)
}

// WithExample returns a copy of m with an example body.
func (m MediaType) WithExample(v any) MediaType {
	m.Example = v
	return m
}

// Content maps media type names to their body schema in declaration order.
type Content = sequencedmap.Map[string, MediaType]

func newContent(media []MediaType) (*Content, error) {
	c := sequencedmap.New[string, MediaType]()
	for _, m := range media {
		if err := validation.Validate(m.Name, validation.Required); err != nil {
			return nil, validation.Errors{"mediaType": err}
		}
		if m.Schema == nil {
			return nil, ErrNilNode
		}
		if _, ok := c.Get(m.Name); ok {
			return nil, &DuplicateMediaTypeError{MediaType: m.Name}
		}
		c.Set(m.Name, m)
	}
	return c, nil
}

// RequestBodySpec is a [*RequestBody], a [Reference] to a registered one, or
// [NoRequestBody].
type RequestBodySpec interface {
	requestBodySpec()
}

func (*RequestBody) requestBodySpec()  {}
func (Reference) requestBodySpec()     {}
func (noRequestBody) requestBodySpec() {}

type noRequestBody struct{}

// NoRequestBody declares an operation without a request body. A nil body
// means the same.
var NoRequestBody RequestBodySpec = noRequestBody{}

func hasBody(b RequestBodySpec) bool {
	if b == nil || b == NoRequestBody {
		return false
	}
	if rb, ok := b.(*RequestBody); ok && rb == nil {
		return false
	}
	return true
}

// RequestBody is the body of a request in one or more media types.
type RequestBody struct {
	Description string
	Required    bool
	Content     *Content
}

// NewRequestBody declares a request body with at least one media type.
func NewRequestBody(description string, required bool, media ...MediaType) (*RequestBody, error) {
	if err := validation.Validate(media, validation.Required); err != nil {
		return nil, validation.Errors{"content": err}
	}
	c, err := newContent(media)
	if err != nil {
		return nil, err
	}
	return &RequestBody{
		Description: transform.CollapseSpace(description),
		Required:    required,
		Content:     c,
	}, nil
}

// MustRequestBody is like [NewRequestBody] but panics on error.
func MustRequestBody(description string, required bool, media ...MediaType) *RequestBody {
	b, err := NewRequestBody(description, required, media...)
	if err != nil {
		panic(err)
	}
	return b
}
