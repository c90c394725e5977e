package handlers

import (
	"tournament-hub/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, authService *services.AuthService, userService *services.UserService, auth fiber.Handler) {
	app.Post("/auth/token", authService.ExchangeToken)
	app.Post("/auth/logout", authService.Logout)
	app.Get("/getMe", auth, userService.GetMe)
}
