package services

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorStatus(t *testing.T, err error) (int, map[string]string) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespondErrorMapsTaxonomy(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{notFound("Team not found"), fiber.StatusNotFound, "Team not found"},
		{forbidden("Only team creator can delete the team"), fiber.StatusForbidden, "Only team creator can delete the team"},
		{unauthorized("Unauthorized - No valid token"), fiber.StatusUnauthorized, "Unauthorized - No valid token"},
		{conflict("You are already a member of this team"), fiber.StatusBadRequest, "You are already a member of this team"},
		{capacityExceeded("Team is full"), fiber.StatusBadRequest, "Team is full"},
		{badRequest("teamName is required"), fiber.StatusBadRequest, "teamName is required"},
	}
	for _, tt := range tests {
		status, body := errorStatus(t, tt.err)
		assert.Equal(t, tt.status, status)
		assert.Equal(t, tt.msg, body["error"])
	}
}

func TestRespondErrorHidesInternalErrors(t *testing.T) {
	status, body := errorStatus(t, errors.New("pq: connection refused"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"])
}
