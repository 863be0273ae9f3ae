package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("Ali123")
	require.NoError(t, err)

	assert.NotEqual(t, "Ali123", hash)
	assert.True(t, hasher.Check("Ali123", hash))
	assert.False(t, hasher.Check("ali123", hash))
	assert.False(t, hasher.Check("Ali123", "not-a-hash"))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret")
	require.NoError(t, err)
	second, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
