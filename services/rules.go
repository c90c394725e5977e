package services

import (
	"tournament-hub/models"
)

// Capacity and membership rules. Every mutation on teams goes through these
// validators, called under a row lock inside the owning transaction so the
// checks hold at write time, not just at read time.

func validateTeamCreation(t *models.Tournament, teamCount int64, alreadyInTournament bool) error {
	if alreadyInTournament {
		return conflict("You already have a team in this tournament")
	}
	if t.MaxTeams > 0 && teamCount >= int64(t.MaxTeams) {
		return capacityExceeded("Tournament has reached the maximum number of teams")
	}
	return nil
}

func validateJoin(t *models.Tournament, memberCount int64, alreadyMember, inOtherTeam bool) error {
	if alreadyMember {
		return conflict("You are already a member of this team")
	}
	if inOtherTeam {
		return conflict("You already have a team in this tournament")
	}
	if memberCount >= int64(t.MaxTeamSize) {
		return capacityExceeded("Team is full")
	}
	return nil
}

func validateLeave(team *models.Team, userID string) error {
	if team.CreatedByID == userID {
		return badRequest("Team creator cannot leave. Please delete the team instead.")
	}
	return nil
}

func validateRemoval(team *models.Team, actingUserID, targetUserID string) error {
	if err := requireOwner(team.CreatedByID, actingUserID, "Only team creator can remove members"); err != nil {
		return err
	}
	if targetUserID == team.CreatedByID {
		return badRequest("Cannot remove team creator")
	}
	return nil
}

// requireOwner is the ownership gate shared by team deletion, member removal
// and tournament deletion.
func requireOwner(ownerID, actingUserID, msg string) error {
	if ownerID != actingUserID {
		return forbidden(msg)
	}
	return nil
}
