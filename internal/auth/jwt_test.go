package auth

import (
	"testing"

	"kardash_backend/internal/config"
	"kardash_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	t.Cleanup(func() {
		config.AppConfig = nil
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken("user-123", models.UserRoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.UserRoleAdmin, claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestParseTokenInvalid(t *testing.T) {
	setupJWTConfig(t)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenWrongSecret(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken("user-123", models.UserRoleFreelancer)
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "another-secret"

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
