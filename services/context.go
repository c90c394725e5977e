package services

import (
	"github.com/gofiber/fiber/v2"
)

// subjectID returns the authenticated user id attached by the auth
// middleware. Routes registered without RequireAuth never call this.
func subjectID(c *fiber.Ctx) (string, error) {
	id, _ := c.Locals("user_id").(string)
	if id == "" {
		return "", unauthorized("Unauthorized - No valid token")
	}
	return id, nil
}
