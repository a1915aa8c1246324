package security_test

import (
	"testing"

	"github.com/bloodlink/auth-service/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := security.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, h.Verify("secret1", hash))
	assert.False(t, h.Verify("secret2", hash))
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	h := security.NewBcryptHasher(bcrypt.MinCost)

	h1, err := h.Hash("secret1")
	require.NoError(t, err)
	h2, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, h.Verify("secret1", h1))
	assert.True(t, h.Verify("secret1", h2))
}

func TestBcryptHasher_MalformedHashIsMismatch(t *testing.T) {
	h := security.NewBcryptHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("secret1", ""))
	assert.False(t, h.Verify("secret1", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("", ""))
}

func TestBcryptHasher_ShortInputStillHashes(t *testing.T) {
	// Length policy lives at the API boundary, not here.
	h := security.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("ab")
	require.NoError(t, err)
	assert.True(t, h.Verify("ab", hash))
}

func TestNewBcryptHasher_ClampsInvalidCost(t *testing.T) {
	h := security.NewBcryptHasher(99)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
