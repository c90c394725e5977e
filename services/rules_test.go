package services

import (
	"testing"

	"tournament-hub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func duoTournament() *models.Tournament {
	return &models.Tournament{ID: "t1", Kind: models.KindDuo, MaxTeamSize: 2, MaxTeams: 4}
}

func TestValidateTeamCreation(t *testing.T) {
	tournament := duoTournament()

	assert.NoError(t, validateTeamCreation(tournament, 0, false))
	assert.NoError(t, validateTeamCreation(tournament, 3, false))

	err := validateTeamCreation(tournament, 1, true)
	assert.ErrorIs(t, err, ErrConflict)

	err = validateTeamCreation(tournament, 4, false)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// MaxTeams == 0 means unlimited.
	unlimited := &models.Tournament{Kind: models.KindSolo, MaxTeamSize: 1, MaxTeams: 0}
	assert.NoError(t, validateTeamCreation(unlimited, 5000, false))
}

func TestValidateJoin(t *testing.T) {
	tournament := duoTournament()

	assert.NoError(t, validateJoin(tournament, 1, false, false))

	err := validateJoin(tournament, 1, true, false)
	assert.ErrorIs(t, err, ErrConflict)

	err = validateJoin(tournament, 1, false, true)
	assert.ErrorIs(t, err, ErrConflict)

	err = validateJoin(tournament, 2, false, false)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// The duplicate check wins over the capacity check, so a re-join of a
	// full team reads as a conflict, not as a full team.
	err = validateJoin(tournament, 2, true, false)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestValidateLeave(t *testing.T) {
	team := &models.Team{ID: "team1", CreatedByID: "u1"}

	assert.NoError(t, validateLeave(team, "u2"))

	err := validateLeave(team, "u1")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestValidateRemoval(t *testing.T) {
	team := &models.Team{ID: "team1", CreatedByID: "u1"}

	assert.NoError(t, validateRemoval(team, "u1", "u2"))

	err := validateRemoval(team, "u2", "u3")
	assert.ErrorIs(t, err, ErrForbidden)

	err = validateRemoval(team, "u1", "u1")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestRequireOwner(t *testing.T) {
	assert.NoError(t, requireOwner("u1", "u1", "nope"))

	err := requireOwner("u1", "u2", "Only team creator can delete the team")
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "Only team creator can delete the team", err.Error())
}

// Walks the duo lifecycle: U1 creates, U2 joins, U3 bounces off the full
// team, U2 leaves, U3 gets the freed slot.
func TestDuoTeamLifecycle(t *testing.T) {
	tournament := duoTournament()

	// U1 creates the team.
	require.NoError(t, validateTeamCreation(tournament, 0, false))
	memberCount := int64(1)

	// U2 joins, team is now full.
	require.NoError(t, validateJoin(tournament, memberCount, false, false))
	memberCount++

	// U3 is rejected while the team is full.
	err := validateJoin(tournament, memberCount, false, false)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	// U2 leaves (not the owner), freeing a slot.
	team := &models.Team{ID: "team1", TournamentID: tournament.ID, CreatedByID: "u1"}
	require.NoError(t, validateLeave(team, "u2"))
	memberCount--

	// U3 can join now.
	assert.NoError(t, validateJoin(tournament, memberCount, false, false))
}
