package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateJWT(RoleManager, "CTV")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, RoleManager, claims.Role)
	assert.Equal(t, "CTV", claims.Account)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateJWT(RoleSoldier, "c2d7")
	require.NoError(t, err)

	SetSecret("second-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	SetSecret("test-secret")
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}
