package oasgen

import (
	"io"

	"github.com/Gobd/oasgen/encode"
)

// ToJSON builds the document and renders it as JSON, indented by indent
// spaces per level or compact when indent is 0.
func (d *Document) ToJSON(indent int) (string, error) {
	b, err := d.renderJSON(indent)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToYAML builds the document and renders it as block-style YAML.
func (d *Document) ToYAML() (string, error) {
	m, err := d.Build()
	if err != nil {
		return "", err
	}
	b, err := encode.YAML(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalJSON implements [json.Marshaler] with the compact rendering.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.renderJSON(0)
}

// WriteJSON writes the JSON rendering to w.
func (d *Document) WriteJSON(w io.Writer, indent int) error {
	b, err := d.renderJSON(indent)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// WriteYAML writes the YAML rendering to w.
func (d *Document) WriteYAML(w io.Writer) error {
	s, err := d.ToYAML()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func (d *Document) renderJSON(indent int) ([]byte, error) {
	m, err := d.Build()
	if err != nil {
		return nil, err
	}
	return encode.JSON(m, indent)
}
