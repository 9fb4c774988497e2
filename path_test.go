package oasgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/oasgen"
)

func TestParsePathTemplate(t *testing.T) {
	tpl, err := oasgen.ParsePathTemplate("/users/{id:Int64}/pets/{petName:String}")
	require.NoError(t, err)
	assert.Equal(t, "/users/{id}/pets/{petName}", tpl.Path)
	assert.Equal(t, []oasgen.TemplateParam{
		{Name: "id", Annotation: "Int64"},
		{Name: "petName", Annotation: "String"},
	}, tpl.Params)
	assert.True(t, tpl.Has("id"))
	assert.False(t, tpl.Has("pets"))

	tpl, err = oasgen.ParsePathTemplate("/files/{name}.{ext}")
	require.NoError(t, err)
	assert.Equal(t, "/files/{name}.{ext}", tpl.Path)
	assert.Len(t, tpl.Params, 2)

	tpl, err = oasgen.ParsePathTemplate("/")
	require.NoError(t, err)
	assert.Equal(t, "/", tpl.Path)
	assert.Empty(t, tpl.Params)

	tpl = oasgen.MustParsePathTemplate("/pets/{ pet_id : PetId }")
	assert.Equal(t, "/pets/{pet_id}", tpl.Path)
	assert.Equal(t, "PetId", tpl.Params[0].Annotation)
}

func TestParsePathTemplate_Errors(t *testing.T) {
	for _, tpl := range []string{
		"",
		"pets",
		"/pets/{id",
		"/pets/id}",
		"/pets/{}",
		"/pets/{:Int64}",
		"/pets/{a{b}}",
		"/pets/{a b}",
		"/pets/{a/b}",
	} {
		t.Run(tpl, func(t *testing.T) {
			_, err := oasgen.ParsePathTemplate(tpl)
			var invalid *oasgen.InvalidPathTemplateError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tpl, invalid.Template)
		})
	}

	_, err := oasgen.ParsePathTemplate("/a/{id}/b/{id:Int64}")
	var dup *oasgen.DuplicatePathParameterError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "id", dup.Name)

	assert.Panics(t, func() { oasgen.MustParsePathTemplate("nope") })
}
