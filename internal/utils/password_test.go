package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, VerifyPassword(hash, "secret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "secret"))
}

func TestHashPasswordClampsBadCost(t *testing.T) {
	// A misconfigured BCRYPT_COST must not break registration.
	for _, cost := range []int{-1, 0, 99} {
		hash, err := HashPassword("secret", cost)
		require.NoError(t, err)
		assert.True(t, VerifyPassword(hash, "secret"))
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("secret", 4)
	require.NoError(t, err)
	h2, err := HashPassword("secret", 4)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
