package oasgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/oasgen"
)

func TestArray(t *testing.T) {
	tests := []struct {
		name    string
		members []oasgen.Type
		want    oasgen.Type
	}{
		{"single", []oasgen.Type{oasgen.String()}, oasgen.ArraySingle{Item: oasgen.String()}},
		{"repeated collapses", []oasgen.Type{oasgen.String(), oasgen.String()}, oasgen.ArraySingle{Item: oasgen.String()}},
		{"union", []oasgen.Type{oasgen.String(), oasgen.Int64(), oasgen.String()},
			oasgen.ArrayUnion{Items: []oasgen.Type{oasgen.String(), oasgen.Int64()}}},
		{"formats differ", []oasgen.Type{oasgen.Int32(), oasgen.Int64()},
			oasgen.ArrayUnion{Items: []oasgen.Type{oasgen.Int32(), oasgen.Int64()}}},
		{"any wins", []oasgen.Type{oasgen.String(), oasgen.Any()}, oasgen.ArrayAny{}},
		{"reference", []oasgen.Type{oasgen.SchemaRef("Pet"), oasgen.SchemaRef("Pet")}, oasgen.ArraySingle{Item: oasgen.SchemaRef("Pet")}},
		{"nil dropped", []oasgen.Type{nil, oasgen.Boolean()}, oasgen.ArraySingle{Item: oasgen.Boolean()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oasgen.Array(tt.members...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := oasgen.Array()
	var empty *oasgen.EmptyArrayMembersError
	require.ErrorAs(t, err, &empty)
	assert.Panics(t, func() { oasgen.MustArray(nil) })
	assert.Equal(t, oasgen.ArrayAny{}, oasgen.AnyArray())
}

func TestOneOf(t *testing.T) {
	got, err := oasgen.OneOf(oasgen.String(), oasgen.String())
	require.NoError(t, err)
	assert.Equal(t, oasgen.String(), got)

	got, err = oasgen.OneOf(oasgen.SchemaRef("Cat"), oasgen.SchemaRef("Dog"))
	require.NoError(t, err)
	assert.Equal(t, oasgen.OneOfType{Members: []oasgen.Type{oasgen.SchemaRef("Cat"), oasgen.SchemaRef("Dog")}}, got)

	_, err = oasgen.OneOf()
	assert.Error(t, err)
}

func TestObject(t *testing.T) {
	id := oasgen.MustSchema(oasgen.String(), oasgen.ReadOnly)
	name := oasgen.MustSchema(oasgen.String(), oasgen.Required)
	owner := oasgen.MustSchema(oasgen.SchemaRef("Owner"), oasgen.Required)

	o, err := oasgen.NewObject().Field("id", id).Field("name", name).Field("owner", owner).Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "owner"}, o.Required())
	assert.Len(t, o.Fields(), 3)
	s, ok := o.Field("name")
	require.True(t, ok)
	assert.Same(t, name, s)
	_, ok = o.Field("missing")
	assert.False(t, ok)

	_, err = oasgen.NewObject().Field("id", id).Field("id", name).Build()
	var dup *oasgen.DuplicateFieldError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "id", dup.Field)

	_, err = oasgen.Object(oasgen.Field{Name: "id"})
	require.ErrorIs(t, err, oasgen.ErrNilNode)

	assert.Empty(t, oasgen.MustObject().Required())
}

func TestPrimitiveByName(t *testing.T) {
	p, ok := oasgen.PrimitiveByName("Int64")
	require.True(t, ok)
	assert.Equal(t, oasgen.PrimitiveOf(oasgen.KindInteger, "int64"), p)

	p, ok = oasgen.PrimitiveByName("DateTime")
	require.True(t, ok)
	assert.Equal(t, "date-time", p.Format)

	_, ok = oasgen.PrimitiveByName("PetId")
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	assert.True(t, oasgen.Equal(oasgen.MustArray(oasgen.String()), oasgen.MustArray(oasgen.String())))
	assert.False(t, oasgen.Equal(oasgen.String(), oasgen.Email()))
	assert.False(t, oasgen.Equal(oasgen.SchemaRef("A"), oasgen.ParameterRef("A")))
}
