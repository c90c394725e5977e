package services

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Error taxonomy shared by every service. Handlers never map statuses
// themselves; respondError is the single authority.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrConflict         = errors.New("conflict")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrBadRequest       = errors.New("bad request")
)

type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Unwrap() error { return e.kind }

func notFound(msg string) error         { return &apiError{ErrNotFound, msg} }
func forbidden(msg string) error        { return &apiError{ErrForbidden, msg} }
func unauthorized(msg string) error     { return &apiError{ErrUnauthorized, msg} }
func conflict(msg string) error         { return &apiError{ErrConflict, msg} }
func capacityExceeded(msg string) error { return &apiError{ErrCapacityExceeded, msg} }
func badRequest(msg string) error       { return &apiError{ErrBadRequest, msg} }

// respondError converts a service error into the JSON error response the
// frontend expects. Conflict and capacity failures surface as 400 to match
// the clients already in the field. Anything outside the taxonomy is logged
// and hidden behind a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrConflict),
		errors.Is(err, ErrCapacityExceeded),
		errors.Is(err, ErrBadRequest):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("❌ [%s %s] internal error: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
