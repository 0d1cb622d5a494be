package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "rahasia123"))
	assert.Error(t, CheckPasswordHash(hash, "rahasia124"))
}

func TestIsAlphaNumeric(t *testing.T) {
	assert.True(t, IsAlphaNumeric("abc12345"))
	assert.False(t, IsAlphaNumeric("abcdefgh"))
	assert.False(t, IsAlphaNumeric("12345678"))
	assert.False(t, IsAlphaNumeric(""))
}
