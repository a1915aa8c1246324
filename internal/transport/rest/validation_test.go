package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateRequest_ValidRegister(t *testing.T) {
	req := registerRequest{
		Name:     strPtr("Alice"),
		Email:    "alice@test.com",
		Password: "secret1",
	}
	assert.Nil(t, validateRequest(&req))
}

func TestValidateRequest_EmptyNameIsValid(t *testing.T) {
	req := registerRequest{
		Name:     strPtr(""),
		Email:    "alice@test.com",
		Password: "secret1",
	}
	assert.Nil(t, validateRequest(&req))
}

func TestValidateRequest_MissingNameFails(t *testing.T) {
	req := registerRequest{
		Email:    "alice@test.com",
		Password: "secret1",
	}
	meta := validateRequest(&req)
	require.NotNil(t, meta)
	assert.Equal(t, "required", meta["name"])
}

func TestValidateRequest_CollectsAllFieldErrors(t *testing.T) {
	req := registerRequest{
		Email:    "not-an-email",
		Password: "short",
	}
	meta := validateRequest(&req)
	require.NotNil(t, meta)
	assert.Equal(t, "required", meta["name"])
	assert.Equal(t, "must be a valid email address", meta["email"])
	assert.Equal(t, "must be at least 6 characters", meta["password"])
}

func TestValidateRequest_MetaUsesWireFieldNames(t *testing.T) {
	meta := validateRequest(&loginRequest{})
	require.NotNil(t, meta)
	assert.Contains(t, meta, "email")
	assert.Contains(t, meta, "password")
	assert.NotContains(t, meta, "Email")
	assert.NotContains(t, meta, "Password")
}
