package oasgen

import (
	"fmt"
	"strings"

	"github.com/Gobd/oasgen/transform"
)

// Method is an HTTP method of a path item, in lower case.
type Method string

// Methods allowed on a path item.
const (
	MethodGet     Method = "get"
	MethodPut     Method = "put"
	MethodPost    Method = "post"
	MethodDelete  Method = "delete"
	MethodOptions Method = "options"
	MethodHead    Method = "head"
	MethodPatch   Method = "patch"
	MethodTrace   Method = "trace"
)

var methods = []Method{MethodGet, MethodPut, MethodPost, MethodDelete, MethodOptions, MethodHead, MethodPatch, MethodTrace}

// ParseMethod returns the method named s, case-insensitively.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if !m.valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
	return m, nil
}

func (m Method) valid() bool {
	for _, v := range methods {
		if m == v {
			return true
		}
	}
	return false
}

// Operation is a single method on a path.
type Operation struct {
	Method      Method
	Summary     string
	Description string
	OperationID string
	Tags        []string
	Deprecated  bool
	Parameters  []ParameterSpec
	RequestBody RequestBodySpec
	Responses   *Responses
}

// OperationOption configures an [Operation].
type OperationOption func(*Operation)

// WithSummary sets the operation summary.
func WithSummary(summary string) OperationOption {
	return func(o *Operation) {
		o.Summary = transform.CollapseSpace(summary)
	}
}

// WithDescription sets the operation description.
func WithDescription(desc string) OperationOption {
	return func(o *Operation) {
		o.Description = transform.CollapseSpace(desc)
	}
}

// WithOperationID sets the operationId, unique across the document.
func WithOperationID(id string) OperationOption {
	return func(o *Operation) {
		o.OperationID = strings.TrimSpace(id)
	}
}

// WithTags adds tags. A tag already present is ignored.
func WithTags(tags ...string) OperationOption {
	return func(o *Operation) {
		for _, t := range tags {
			t = strings.TrimSpace(t)
			if t == "" || contains(o.Tags, t) {
				continue
			}
			o.Tags = append(o.Tags, t)
		}
	}
}

// WithDeprecated marks the operation as deprecated.
func WithDeprecated() OperationOption {
	return func(o *Operation) {
		o.Deprecated = true
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
