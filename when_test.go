package oasgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhen(t *testing.T) {
	r := When(true, "shipping", Length(1, 3))
	assert.NoError(t, r.Validate("ab"))
	assert.Error(t, r.Validate("abcd"))

	r = When(false, "shipping", Length(1, 3)).Else(In("x"))
	assert.NoError(t, r.Validate("x"))
	assert.Error(t, r.Validate("abcd"))
}

func TestWhen_Describe(t *testing.T) {
	s := &Schema{Description: "Postal code."}
	r := When(true, "country is US", Required, Length(5, 10)).Else(In("n/a"))
	require.NoError(t, r.Describe(s))
	assert.Equal(t, "Postal code. when country is US: required, min length 5, max length 10 else: one of [n/a]", s.Description)
	assert.False(t, s.Required)
	assert.Nil(t, s.MinLength)
}

func TestEach(t *testing.T) {
	r := Each(Min(1), Max(3))
	assert.NoError(t, r.Validate([]int{1, 2, 3}))
	assert.Error(t, r.Validate([]int{1, 5}))

	s := &Schema{}
	require.NoError(t, r.Describe(s))
	assert.Equal(t, "each item: min 1, max 3", s.Description)
}
