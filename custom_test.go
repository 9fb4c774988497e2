package oasgen_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/oasgen"
)

func TestCustom(t *testing.T) {
	even := oasgen.Custom(func(v any) error {
		if n, ok := v.(int); ok && n%2 != 0 {
			return fmt.Errorf("custom error")
		}
		return nil
	}, "custom description")

	s, err := oasgen.NewSchema(oasgen.Int32(), oasgen.Describe("A number."), even, oasgen.Example(4))
	require.NoError(t, err)
	assert.Equal(t, "A number. custom description", s.Description)

	_, err = oasgen.NewSchema(oasgen.Int32(), even, oasgen.Example(3))
	var invalid *oasgen.InvalidExampleError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "example", invalid.Attribute)
	assert.EqualError(t, errors.Unwrap(err), "custom error")
}

func TestSchema_ExampleChecks(t *testing.T) {
	tests := []struct {
		name  string
		t     oasgen.Type
		rules []oasgen.Rule
		ok    bool
	}{
		{"string", oasgen.String(), []oasgen.Rule{oasgen.Example("rex")}, true},
		{"string wrong kind", oasgen.String(), []oasgen.Rule{oasgen.Example(1)}, false},
		{"integer", oasgen.Int64(), []oasgen.Rule{oasgen.Example(3)}, true},
		{"integer from whole float", oasgen.Int64(), []oasgen.Rule{oasgen.Example(3.0)}, true},
		{"integer fraction", oasgen.Int64(), []oasgen.Rule{oasgen.Example(3.5)}, false},
		{"integer infinity", oasgen.Integer(), []oasgen.Rule{oasgen.Example(math.Inf(1))}, false},
		{"number", oasgen.Double(), []oasgen.Rule{oasgen.Example(3.5)}, true},
		{"number infinity", oasgen.Double(), []oasgen.Rule{oasgen.Example(math.Inf(-1))}, false},
		{"number NaN", oasgen.Number(), []oasgen.Rule{oasgen.Default(math.NaN())}, false},
		{"boolean", oasgen.Boolean(), []oasgen.Rule{oasgen.Example("true")}, false},
		{"email", oasgen.Email(), []oasgen.Rule{oasgen.Example("rex@example.com")}, true},
		{"bad email", oasgen.Email(), []oasgen.Rule{oasgen.Example("rex")}, false},
		{"date", oasgen.Date(), []oasgen.Rule{oasgen.Example("2024-02-29")}, true},
		{"bad date", oasgen.Date(), []oasgen.Rule{oasgen.Example("29/02/2024")}, false},
		{"date-time", oasgen.DateTime(), []oasgen.Rule{oasgen.Example("2024-02-29T10:00:00Z")}, true},
		{"byte", oasgen.Byte(), []oasgen.Rule{oasgen.Example("aGVsbG8=")}, true},
		{"format override", oasgen.String(), []oasgen.Rule{oasgen.Format("uuid"), oasgen.Example("nope")}, false},
		{"length", oasgen.String(), []oasgen.Rule{oasgen.Length(1, 3), oasgen.Example("four")}, false},
		{"enum default", oasgen.String(), []oasgen.Rule{oasgen.In("a", "b"), oasgen.Default("c")}, false},
		{"min", oasgen.Int32(), []oasgen.Rule{oasgen.Min(1), oasgen.Example(0)}, false},
		{"array", oasgen.MustArray(oasgen.String()), []oasgen.Rule{oasgen.Unique(), oasgen.Example([]string{"a", "a"})}, false},
		{"array kind", oasgen.MustArray(oasgen.String()), []oasgen.Rule{oasgen.Example("a")}, false},
		{"object", oasgen.MustObject(), []oasgen.Rule{oasgen.Example(map[string]any{})}, true},
		{"object kind", oasgen.MustObject(), []oasgen.Rule{oasgen.Example(1)}, false},
		{"reference skips checks", oasgen.SchemaRef("Pet"), []oasgen.Rule{oasgen.Example(1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := oasgen.NewSchema(tt.t, tt.rules...)
			if tt.ok {
				require.NoError(t, err)
			} else {
				var invalid *oasgen.InvalidExampleError
				require.ErrorAs(t, err, &invalid)
			}
		})
	}
}

func TestSchema_NilType(t *testing.T) {
	s, err := oasgen.NewSchema(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, oasgen.Any(), s.Type)
	assert.False(t, s.IsReference())
	assert.True(t, oasgen.MustSchema(oasgen.SchemaRef("Pet")).IsReference())
	assert.Panics(t, func() { oasgen.MustSchema(oasgen.String(), oasgen.Example(1)) })
}
