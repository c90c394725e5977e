package handlers

import (
	"tournament-hub/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService, teamService *services.TeamService, auth fiber.Handler) {
	// 🔓 Public reads
	app.Get("/tournaments", tournamentService.GetAllTournaments)
	app.Get("/tournaments/:tournamentId/teams", teamService.GetTournamentTeams)
	app.Get("/tournaments/:tournamentId/teams/count", teamService.GetTournamentTeamCount)

	// 🔐 Authenticated mutations
	app.Post("/tournaments", auth, tournamentService.CreateTournament)
	app.Delete("/tournaments/:id", auth, tournamentService.DeleteTournament)
	app.Post("/tournaments/:tournamentId/teams", auth, teamService.CreateTeam)
}
