package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(7, string(RoleAdmin), "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(1, "admin", "a@b.c")
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	_, err = ParseJWT("whatever")
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestJWT_TamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(7, "admin", "admin@example.com")
	require.NoError(t, err)

	_, err = ParseJWT(token + "x")
	assert.Error(t, err)
}
