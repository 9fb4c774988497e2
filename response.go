package oasgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/Gobd/oasgen/transform"
)

// statusKey matches the keys of a responses object.
var statusKey = regexp.MustCompile(`^(default|[1-5][0-9]{2}|[1-5]XX)$`)

// ResponseSpec is a [*Response] or a [Reference] to a registered one.
type ResponseSpec interface {
	responseSpec()
}

func (*Response) responseSpec() {}
func (Reference) responseSpec() {}

// Header is a response header.
type Header struct {
	Description string
	Required    bool
	Deprecated  bool
	Schema      *Schema
}

// Response is a single response of an operation.
type Response struct {
	Description string
	Headers     *sequencedmap.Map[string, Header]
	Content     *Content
}

// ResponseOption configures a [Response].
type ResponseOption func(*Response) error

// WithContent sets the response body, one entry per media type.
func WithContent(media ...MediaType) ResponseOption {
	return func(r *Response) error {
		c, err := newContent(media)
		if err != nil {
			return err
		}
		r.Content = c
		return nil
	}
}

// WithJSON is WithContent(JSONContent(s)).
func WithJSON(s *Schema) ResponseOption {
	return WithContent(JSONContent(s))
}

// WithHeader adds a response header.
func WithHeader(name string, h Header) ResponseOption {
	return func(r *Response) error {
		if err := validation.Validate(name, validation.Required); err != nil {
			return validation.Errors{"header": err}
		}
		if h.Schema == nil {
			return ErrNilNode
		}
		if _, ok := r.Headers.Get(name); ok {
			return fmt.Errorf("oasgen: duplicate header %q", name)
		}
		h.Description = transform.CollapseSpace(h.Description)
		r.Headers.Set(name, h)
		return nil
	}
}

// NewResponse declares a response. The description is required.
func NewResponse(description string, opts ...ResponseOption) (*Response, error) {
	r := &Response{
		Description: transform.CollapseSpace(description),
		Headers:     sequencedmap.New[string, Header](),
	}
	if err := validation.Validate(r.Description, validation.Required); err != nil {
		return nil, validation.Errors{"description": err}
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustResponse is like [NewResponse] but panics on error.
func MustResponse(description string, opts ...ResponseOption) *Response {
	r, err := NewResponse(description, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// ResponseEntry is a response keyed by status code, status range or "default".
type ResponseEntry struct {
	Key      string
	Response ResponseSpec
}

// Status keys r by an HTTP status code.
func Status(code int, r ResponseSpec) ResponseEntry {
	return ResponseEntry{Key: strconv.Itoa(code), Response: r}
}

// StatusRange keys r by a status class such as "4XX".
func StatusRange(class string, r ResponseSpec) ResponseEntry {
	return ResponseEntry{Key: strings.ToUpper(class), Response: r}
}

// DefaultResponse keys r as the default response.
func DefaultResponse(r ResponseSpec) ResponseEntry {
	return ResponseEntry{Key: "default", Response: r}
}

// Responses is the non-empty response set of an operation.
type Responses struct {
	entries *sequencedmap.Map[string, ResponseSpec]
}

// NewResponses builds a response set. It fails on an empty set, on a key
// outside 100..599, 1XX..5XX and default, and on a repeated key.
func NewResponses(entries ...ResponseEntry) (*Responses, error) {
	if len(entries) == 0 {
		return nil, &EmptyResponsesError{}
	}
	m := sequencedmap.New[string, ResponseSpec]()
	for _, e := range entries {
		if err := validation.Validate(e.Key, validation.Required, validation.Match(statusKey)); err != nil {
			return nil, fmt.Errorf("oasgen: response status %q: %w", e.Key, err)
		}
		if !hasResponse(e.Response) {
			return nil, ErrNilNode
		}
		if _, ok := m.Get(e.Key); ok {
			return nil, &DuplicateStatusCodeError{Status: e.Key}
		}
		m.Set(e.Key, e.Response)
	}
	return &Responses{entries: m}, nil
}

// MustResponses is like [NewResponses] but panics on error.
func MustResponses(entries ...ResponseEntry) *Responses {
	r, err := NewResponses(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

func hasResponse(r ResponseSpec) bool {
	if r == nil {
		return false
	}
	if resp, ok := r.(*Response); ok && resp == nil {
		return false
	}
	return true
}

// Len returns the number of responses.
func (r *Responses) Len() int {
	if r == nil || r.entries == nil {
		return 0
	}
	return r.entries.Len()
}

// Get returns the response for a status key.
func (r *Responses) Get(key string) (ResponseSpec, bool) {
	if r == nil || r.entries == nil {
		return nil, false
	}
	return r.entries.Get(key)
}

// Keys returns the status keys in declaration order.
func (r *Responses) Keys() []string {
	if r.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, r.entries.Len())
	for k := range r.entries.All() {
		keys = append(keys, k)
	}
	return keys
}
