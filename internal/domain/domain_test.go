package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/bloodlink/auth-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@test.com", domain.NormalizeEmail("Alice@Test.Com"))
	assert.Equal(t, "alice@test.com", domain.NormalizeEmail("  alice@test.com  "))
	assert.Equal(t, "", domain.NormalizeEmail("   "))
}

func TestUser_PasswordHashNeverMarshals(t *testing.T) {
	u := domain.User{
		Name:         "Alice",
		Email:        "alice@test.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password_hash")
	assert.NotContains(t, string(b), u.PasswordHash)
}
