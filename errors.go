package oasgen

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is a map of field names to their validation errors. It is
// returned when the shape of a declaration (info, server, parameter, ...) is
// invalid, and is an alias for [validation.Errors] from ozzo-validation.
type ValidationErrors = validation.Errors

var (
	// ErrFrozen is returned by declaration calls made after the document was built.
	ErrFrozen = errors.New("oasgen: document is frozen after build")

	// ErrBodyNotAllowed is returned when a GET operation declares a request body.
	ErrBodyNotAllowed = errors.New("oasgen: GET operation cannot have a request body")

	// ErrInvalidMethod is returned for HTTP methods outside the OpenAPI set.
	ErrInvalidMethod = errors.New("oasgen: invalid HTTP method")

	// ErrInvalidCategory is returned for unknown component categories.
	ErrInvalidCategory = errors.New("oasgen: invalid component category")

	// ErrNilNode is returned when a nil schema, parameter or response is declared.
	ErrNilNode = errors.New("oasgen: nil node")

	// ErrPathParameterNotInTemplate is returned when a path parameter is added
	// to a path item whose template has no placeholder of that name.
	ErrPathParameterNotInTemplate = errors.New("oasgen: path parameter not in template")
)

// DuplicateFieldError reports an object type declared with the same field twice.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("oasgen: duplicate field %q", e.Field)
}

// DuplicateNameError reports a component name registered twice in one category.
type DuplicateNameError struct {
	Category Category
	Name     string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("oasgen: %s %q is already registered", e.Category, e.Name)
}

// UnknownReferenceError reports a reference to a name missing from the registry.
type UnknownReferenceError struct {
	Category Category
	Name     string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("oasgen: unknown reference #/components/%s/%s", e.Category, e.Name)
}

// DuplicatePathParameterError reports a placeholder that occurs twice in a
// path template, or a path parameter declared twice on a path item.
type DuplicatePathParameterError struct {
	Template string
	Name     string
}

func (e *DuplicatePathParameterError) Error() string {
	return fmt.Sprintf("oasgen: path parameter %q appears multiple times in %q", e.Name, e.Template)
}

// UnresolvedPathParameterError reports a template placeholder with no
// matching path parameter.
type UnresolvedPathParameterError struct {
	Path string
	Name string
}

func (e *UnresolvedPathParameterError) Error() string {
	return fmt.Sprintf("oasgen: path parameter %q of %q has no matching parameter", e.Name, e.Path)
}

// InvalidPathTemplateError reports a malformed path template.
type InvalidPathTemplateError struct {
	Template string
	Reason   string
}

func (e *InvalidPathTemplateError) Error() string {
	return fmt.Sprintf("oasgen: invalid path template %q: %s", e.Template, e.Reason)
}

// DuplicatePathError reports two path templates normalizing to the same path.
type DuplicatePathError struct {
	Path string
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("oasgen: path %q is already defined", e.Path)
}

// MethodAlreadyDefinedError reports a second operation for one method on a path.
type MethodAlreadyDefinedError struct {
	Path   string
	Method Method
}

func (e *MethodAlreadyDefinedError) Error() string {
	return fmt.Sprintf("oasgen: %s already defined on %q", e.Method, e.Path)
}

// DuplicateStatusCodeError reports a response set with a repeated status key.
type DuplicateStatusCodeError struct {
	Status string
}

func (e *DuplicateStatusCodeError) Error() string {
	return fmt.Sprintf("oasgen: duplicate response status %q", e.Status)
}

// EmptyResponsesError reports an operation or response set without responses.
// Path and Method are empty when the set itself was built empty.
type EmptyResponsesError struct {
	Path   string
	Method Method
}

func (e *EmptyResponsesError) Error() string {
	if e.Path == "" {
		return "oasgen: at least one response is required"
	}
	return fmt.Sprintf("oasgen: %s %q needs at least one response", e.Method, e.Path)
}

// EmptyArrayMembersError reports an array type built from no member types.
type EmptyArrayMembersError struct{}

func (e *EmptyArrayMembersError) Error() string {
	return "oasgen: array needs at least one member type"
}

// DuplicateMediaTypeError reports a content map with a repeated media type.
type DuplicateMediaTypeError struct {
	MediaType string
}

func (e *DuplicateMediaTypeError) Error() string {
	return fmt.Sprintf("oasgen: duplicate media type %q", e.MediaType)
}

// DuplicateOperationIDError reports two operations sharing an operationId.
type DuplicateOperationIDError struct {
	OperationID string
	First       string
	Second      string
}

func (e *DuplicateOperationIDError) Error() string {
	return fmt.Sprintf("oasgen: operationId %q used by %s and %s", e.OperationID, e.First, e.Second)
}

// InvalidExampleError reports an example or default value that breaks one of
// the constraints of its own schema node.
type InvalidExampleError struct {
	Attribute string
	Value     any
	Err       error
}

func (e *InvalidExampleError) Error() string {
	return fmt.Sprintf("oasgen: %s %v: %v", e.Attribute, e.Value, e.Err)
}

func (e *InvalidExampleError) Unwrap() error {
	return e.Err
}
