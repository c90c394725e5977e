package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"tournament-hub/models"
	"tournament-hub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authApp(tokens *utils.TokenService) *fiber.App {
	app := fiber.New()
	app.Get("/me", RequireAuth(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    c.Locals("user_id"),
			"discord_id": c.Locals("discord_id"),
		})
	})
	return app
}

func TestRequireAuthMissingToken(t *testing.T) {
	app := authApp(utils.NewTokenService("secret", time.Hour))

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	app := authApp(utils.NewTokenService("secret", time.Hour))

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Token abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	tokens := utils.NewTokenService("secret", -time.Minute)
	signed, err := tokens.Generate(&models.User{ID: "u1", DiscordID: "d1", Username: "gamer"})
	require.NoError(t, err)

	app := authApp(utils.NewTokenService("secret", time.Hour))
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := utils.NewTokenService("secret", time.Hour)
	signed, err := tokens.Generate(&models.User{ID: "u1", DiscordID: "d1", Username: "gamer"})
	require.NoError(t, err)

	app := authApp(tokens)
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
