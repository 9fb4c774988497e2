package oasgen

import (
	"regexp"
	"strings"
)

// paramName is the pattern for parameter names: ^[a-zA-Z0-9._-]+$
var paramName = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// TemplateParam is a placeholder of a path template. Annotation is the text
// after the colon in {name:Annotation}, empty for a bare {name}.
type TemplateParam struct {
	Name       string
	Annotation string
}

// PathTemplate is a parsed path template.
type PathTemplate struct {
	// Raw is the template as declared.
	Raw string
	// Path is the normalized template with every placeholder as {name}.
	Path string
	// Params lists the placeholders in first-occurrence order.
	Params []TemplateParam
}

// Has reports whether the template has a placeholder called name.
func (t PathTemplate) Has(name string) bool {
	for _, p := range t.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// ParsePathTemplate parses a path template such as
// "/users/{id:Int64}/pets/{petName}".
//
// Validation checks:
//   - Non-empty template starting with '/'
//   - Balanced, non-nested braces
//   - Placeholder names match [a-zA-Z0-9._-]+
//   - No placeholder name occurs twice
//
// A template without placeholders is valid.
func ParsePathTemplate(template string) (PathTemplate, error) {
	if template == "" {
		return PathTemplate{}, &InvalidPathTemplateError{Template: template, Reason: "path cannot be empty"}
	}
	if !strings.HasPrefix(template, "/") {
		return PathTemplate{}, &InvalidPathTemplateError{Template: template, Reason: "path must start with '/'"}
	}

	t := PathTemplate{Raw: template}
	var b strings.Builder
	rest := template
	for rest != "" {
		open := strings.IndexAny(rest, "{}")
		if open < 0 {
			b.WriteString(rest)
			break
		}
		if rest[open] == '}' {
			return PathTemplate{}, &InvalidPathTemplateError{Template: template, Reason: "unmatched '}'"}
		}
		b.WriteString(rest[:open])
		rest = rest[open+1:]

		end := strings.IndexAny(rest, "{}")
		if end < 0 || rest[end] == '{' {
			return PathTemplate{}, &InvalidPathTemplateError{Template: template, Reason: "unclosed '{'"}
		}
		name, annotation, _ := strings.Cut(rest[:end], ":")
		rest = rest[end+1:]

		name = strings.TrimSpace(name)
		annotation = strings.TrimSpace(annotation)
		if name == "" {
			return PathTemplate{}, &InvalidPathTemplateError{Template: template, Reason: "empty parameter name"}
		}
		if !paramName.MatchString(name) {
			return PathTemplate{}, &InvalidPathTemplateError{
				Template: template,
				Reason:   "parameter name '" + name + "' must match pattern [a-zA-Z0-9._-]+",
			}
		}
		if t.Has(name) {
			return PathTemplate{}, &DuplicatePathParameterError{Template: template, Name: name}
		}
		t.Params = append(t.Params, TemplateParam{Name: name, Annotation: annotation})
		b.WriteString("{" + name + "}")
	}
	t.Path = b.String()
	return t, nil
}

// MustParsePathTemplate is like [ParsePathTemplate] but panics on error.
func MustParsePathTemplate(template string) PathTemplate {
	t, err := ParsePathTemplate(template)
	if err != nil {
		panic(err)
	}
	return t
}

// annotationType resolves a placeholder annotation: a primitive name such as
// "Int64" or "String", otherwise a reference to the schema of that name.
func annotationType(annotation string) Type {
	if p, ok := PrimitiveByName(annotation); ok {
		return p
	}
	return SchemaRef(annotation)
}
