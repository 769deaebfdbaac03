package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("S3cret!medical")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("S3cret!medical", hash))
	assert.False(t, VerifyPassword("autre-mot-de-passe", hash))
}

func TestHashPassword_Vide(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_TropLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73))
	assert.Error(t, err)
}
