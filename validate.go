package oasgen

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validate builds the document and checks the rendered JSON with kin-openapi.
// It catches what the declaration checks cannot, such as an example that does
// not match a referenced schema.
func (d *Document) Validate(ctx context.Context) error {
	t, err := d.Load()
	if err != nil {
		return err
	}
	return t.Validate(ctx)
}

// Load builds the document and loads the rendered JSON as a kin-openapi
// document, for use with kin-openapi's routers and request validation.
func (d *Document) Load() (*openapi3.T, error) {
	b, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return openapi3.NewLoader().LoadFromData(b)
}
