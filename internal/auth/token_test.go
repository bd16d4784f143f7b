package auth

import (
	"testing"
	"time"

	"synapse_backend/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(secret string, expiry time.Duration) *TokenService {
	return NewTokenService(&config.Config{JWTSecret: secret, JWTExpiry: expiry})
}

func TestTokenService_IssueAndParse(t *testing.T) {
	tokens := newTestTokenService("test-secret", time.Hour)
	userID := uuid.New()

	signed, err := tokens.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestTokenService_Parse_WrongSecret(t *testing.T) {
	tokens := newTestTokenService("test-secret", time.Hour)
	other := newTestTokenService("another-secret", time.Hour)

	signed, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	claims, err := other.Parse(signed)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Parse_Expired(t *testing.T) {
	tokens := newTestTokenService("test-secret", -time.Minute)

	signed, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	claims, err := tokens.Parse(signed)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Parse_Garbage(t *testing.T) {
	tokens := newTestTokenService("test-secret", time.Hour)

	claims, err := tokens.Parse("not.a.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing_RoundTrip(t *testing.T) {
	hash, err := HashPassword("supersecret")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", hash)

	assert.True(t, CheckPasswordHash("supersecret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
