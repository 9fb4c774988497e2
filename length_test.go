package oasgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	r := Length(0, 10)
	require.Nil(t, r.Validate("Straße 1"))   // 8 runes, 9 bytes
	require.Nil(t, r.Validate("Straße 123")) // 10 runes
	require.NotNil(t, r.Validate("Straße 1234"))
	require.NotNil(t, r.Validate(12))
}

func TestLength_Describe(t *testing.T) {
	s := &Schema{}
	require.NoError(t, Length(2, 5).Describe(s))
	assert.Equal(t, 2, *s.MinLength)
	assert.Equal(t, 5, *s.MaxLength)

	s = &Schema{}
	require.NoError(t, MinLength(3).Describe(s))
	assert.Equal(t, 3, *s.MinLength)
	assert.Nil(t, s.MaxLength)

	s = &Schema{}
	require.NoError(t, MaxLength(3).Describe(s))
	assert.Nil(t, s.MinLength)
	assert.Equal(t, 3, *s.MaxLength)
	require.NotNil(t, MaxLength(3).Validate("abcd"))
}

func TestItems(t *testing.T) {
	r := Items(1, 2)
	require.Nil(t, r.Validate([]int{1}))
	require.NotNil(t, r.Validate([]int{1, 2, 3}))

	s := &Schema{}
	require.NoError(t, r.Describe(s))
	assert.Equal(t, 1, *s.MinItems)
	assert.Equal(t, 2, *s.MaxItems)
}
