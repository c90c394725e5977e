package middleware

import (
	"strings"

	"tournament-hub/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth verifies the Bearer token and attaches the subject to the
// request context. Mutating routes never see a request that failed here.
func RequireAuth(tokens *utils.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No token provided",
			})
		}

		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user_id", claims.Subject)
		c.Locals("discord_id", claims.DiscordID)
		c.Locals("claims", claims)
		return c.Next()
	}
}
