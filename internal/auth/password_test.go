package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "correct horse")

	assert.True(t, VerifyPassword("correct horse battery staple", hash))
	assert.False(t, VerifyPassword("wrong password", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	// A malformed hash is a mismatch, never a panic.
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
}

func TestHashUsesFixedCost(t *testing.T) {
	hash, err := HashPassword("s3cret-enough")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
}
