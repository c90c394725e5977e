package handlers

import (
	"tournament-hub/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTeamRoutes(app *fiber.App, teamService *services.TeamService, auth fiber.Handler) {
	// 🔓 Public reads
	app.Get("/teams", teamService.GetAllTeams)
	app.Get("/teams/:teamId/members", teamService.GetTeamMembers)

	// 🔐 Authenticated mutations
	app.Post("/teams/:teamId/join", auth, teamService.JoinTeam)
	app.Post("/teams/:teamId/leave", auth, teamService.LeaveTeam)
	app.Delete("/teams/:teamId", auth, teamService.DeleteTeam)
	app.Delete("/teams/:teamId/members/:memberId", auth, teamService.RemoveMember)
}
