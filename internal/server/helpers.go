package server

import (
	"errors"

	"oracao/internal/authz"
	"oracao/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// currentUser returns the authenticated user stored by AuthRequired.
func (s *Server) currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("currentUser").(*models.User)
	return user
}

// actor builds the authorization actor for the authenticated user.
func (s *Server) actor(c *fiber.Ctx) authz.Actor {
	user := s.currentUser(c)
	if user == nil {
		return authz.Actor{}
	}
	return authz.Actor{ID: user.ID, IsAdmin: user.IsAdmin}
}

// respondServiceError writes a service-layer error with the HTTP status
// implied by its error code.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.HTTPStatus(err), err)
}
