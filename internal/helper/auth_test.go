package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(42, "asha@campus.edu", "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "asha@campus.edu", claims.Email)
	assert.Equal(t, "student", claims.Role)

	// the Authorization header form is accepted as-is
	claims, err = auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
}

func TestGenerateTokenRequiresIdentity(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.GenerateToken(0, "a@b.c", "student")
	assert.Error(t, err)
	_, err = auth.GenerateToken(1, "", "student")
	assert.Error(t, err)
}

func TestVerifyTokenFailures(t *testing.T) {
	auth := SetupAuth("test-secret")
	token, err := auth.GenerateToken(1, "a@campus.edu", "student")
	require.NoError(t, err)

	tests := []struct {
		name  string
		auth  Auth
		token string
	}{
		{"empty token", auth, ""},
		{"garbage token", auth, "not.a.jwt"},
		{"bearer without token", auth, "Bearer "},
		{"wrong secret", SetupAuth("other-secret"), token},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.auth.VerifyToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	auth := SetupAuth("test-secret")

	hashed, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.NoError(t, auth.VerifyPassword("s3cret-pass", hashed))
	assert.Error(t, auth.VerifyPassword("wrong-pass", hashed))
}
