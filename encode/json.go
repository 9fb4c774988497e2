package encode

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// JSON renders v as JSON. With indent > 0 the output is indented by that many
// spaces per level, otherwise it is compact.
func JSON(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	if indent <= 0 {
		return buf.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case *Map:
		if t == nil {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		i := 0
		for k, val := range t.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			if err := writeScalar(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, val); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, el := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, el); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		if err := checkScalar(v); err != nil {
			return err
		}
		return writeScalar(buf, v)
	}
	return nil
}

// writeScalar encodes v without HTML escaping, so <, > and & stay literal.
func writeScalar(buf *bytes.Buffer, v any) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return &UnsupportedValueError{Value: v, Err: err}
	}
	buf.Write(bytes.TrimSuffix(b.Bytes(), []byte("\n")))
	return nil
}
