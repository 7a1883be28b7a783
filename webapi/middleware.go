package webapi

import (
	"strings"

	"github.com/finflow/finflow/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localsUserID = "userID"

// SessionProtected resolves the bearer token into a session and stores the
// owning user id in the request locals. Missing, unknown, and expired tokens
// all get the same 401.
func SessionProtected(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return ErrorResponseJSON(c, fiber.StatusUnauthorized, "Missing or malformed token", nil)
		}
		session, err := authSvc.ValidateSession(c.Context(), token)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		c.Locals(localsUserID, session.UserID)
		return c.Next()
	}
}

// sessionUserID returns the authenticated user id set by SessionProtected.
func sessionUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(localsUserID).(uuid.UUID)
	return id
}
