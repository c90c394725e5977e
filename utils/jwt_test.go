package utils

import (
	"testing"
	"time"

	"tournament-hub/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	email := "gamer@example.com"
	return &models.User{
		ID:        "5f3c7a9e-0000-4000-8000-1234567890ab",
		DiscordID: "112233445566778899",
		Username:  "gamer",
		Avatar:    "a_1f2e3d",
		Email:     &email,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 24*time.Hour)
	user := testUser()

	signed, err := svc.Generate(user)
	require.NoError(t, err)

	claims, err := svc.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.DiscordID, claims.DiscordID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Avatar, claims.Avatar)
	assert.Equal(t, *user.Email, claims.Email)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenExpiry(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	signed, err := svc.Generate(testUser())
	require.NoError(t, err)

	_, err = svc.Parse(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenWrongSecret(t *testing.T) {
	signed, err := NewTokenService("secret-a", time.Hour).Generate(testUser())
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenRejectsUnsignedAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("test-secret", time.Hour).Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := NewTokenService("test-secret", time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
