package oasgen

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Info is the metadata of the API.
type Info struct {
	Title          string
	Version        string
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
}

// Contact is the contact information of the API.
type Contact struct {
	Name  string
	URL   string
	Email string
}

// License is the license of the API.
type License struct {
	Name string
	URL  string
}

// Validate checks the info and returns [ValidationErrors].
func (i Info) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required),
		validation.Field(&i.Version, validation.Required),
		validation.Field(&i.TermsOfService, is.URL),
		validation.Field(&i.Contact),
		validation.Field(&i.License),
	)
}

// Validate checks the contact and returns [ValidationErrors].
func (c Contact) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.URL, is.URL),
		validation.Field(&c.Email, is.EmailFormat),
	)
}

// Validate checks the license and returns [ValidationErrors].
func (l License) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required),
		validation.Field(&l.URL, is.URL),
	)
}

// serverVar matches the {name} variables of a server URL.
var serverVar = regexp.MustCompile(`{([^}]*)}`)

// ServerVariable substitutes a {Name} in a server URL.
type ServerVariable struct {
	Name        string
	Default     string
	Enum        []string
	Description string
}

// Validate checks the variable and returns [ValidationErrors].
func (v ServerVariable) Validate() error {
	enum := make([]any, len(v.Enum))
	for i, e := range v.Enum {
		enum[i] = e
	}
	return validation.ValidateStruct(&v,
		validation.Field(&v.Name, validation.Required, validation.Match(paramName)),
		validation.Field(&v.Default, validation.Required, validation.When(len(enum) > 0, validation.In(enum...))),
	)
}

// Server is a base URL of the API.
type Server struct {
	URL         string
	Description string
	Variables   []ServerVariable
}

// DefaultServer is emitted when a document declares no server.
var DefaultServer = Server{URL: "/", Description: "Default server"}

// Validate checks the server and returns [ValidationErrors]. The variables
// must match the {name} placeholders of the URL exactly, and the URL with
// default values substituted must be absolute or start with '/'.
func (s Server) Validate() error {
	errs := validation.Errors{}
	if err := validation.Validate(s.URL, validation.Required); err != nil {
		errs["url"] = err
		return errs
	}

	declared := map[string]bool{}
	for i, v := range s.Variables {
		if err := v.Validate(); err != nil {
			errs[fmt.Sprintf("variables.%d", i)] = err
			continue
		}
		if declared[v.Name] {
			errs["variables"] = fmt.Errorf("duplicate variable %q", v.Name)
		}
		declared[v.Name] = true
	}
	if err := errs.Filter(); err != nil {
		return err
	}

	used := map[string]bool{}
	for _, m := range serverVar.FindAllStringSubmatch(s.URL, -1) {
		used[m[1]] = true
		if !declared[m[1]] {
			errs["variables"] = fmt.Errorf("missing variable %q used in url", m[1])
		}
	}
	for _, v := range s.Variables {
		if !used[v.Name] {
			errs["variables"] = fmt.Errorf("variable %q is not used in url", v.Name)
		}
	}
	if err := errs.Filter(); err != nil {
		return err
	}

	u := s.URL
	for _, v := range s.Variables {
		u = strings.ReplaceAll(u, "{"+v.Name+"}", v.Default)
	}
	if !strings.HasPrefix(u, "/") && !(strings.Contains(u, "://") && govalidator.IsURL(u)) {
		errs["url"] = errors.New("must be a valid URL or start with '/'")
	}
	return errs.Filter()
}
