package utils

import (
	"testing"
	"time"

	"volunteerhub/core/config"
	"volunteerhub/core/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, config.Load())
}

func TestTokenRoundTrip(t *testing.T) {
	loadTestConfig(t)

	adminID := uuid.New()
	token, err := GenerateToken(adminID, "ABC123", "admin@ngo.org")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "ABC123", claims.NGOCode)
	assert.Equal(t, "admin@ngo.org", claims.Email)
}

func TestValidateAndParseTokenRejectsTampered(t *testing.T) {
	loadTestConfig(t)

	token, err := GenerateToken(uuid.New(), "ABC123", "admin@ngo.org")
	require.NoError(t, err)

	_, err = ValidateAndParseToken(token + "x")
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrInvalidTokenFormat, appErr.Code)
}

func TestValidateAndParseTokenRejectsGarbage(t *testing.T) {
	loadTestConfig(t)

	_, err := ValidateAndParseToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenRemainingTTL(t *testing.T) {
	loadTestConfig(t)

	token, err := GenerateToken(uuid.New(), "ABC123", "admin@ngo.org")
	require.NoError(t, err)

	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)

	ttl := TokenRemainingTTL(claims)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 24*time.Hour)
}

func TestTokenRemainingTTLExpired(t *testing.T) {
	assert.Equal(t, time.Duration(0), TokenRemainingTTL(&TokenClaims{}))
}
