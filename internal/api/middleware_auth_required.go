package api

import (
	"github.com/gofiber/fiber/v2"
)

// AuthRequired authenticates the cookie and attaches both the user and
// their live sync session to the request. Opening the session is lazy
// and idempotent: the first authenticated request after a restart
// re-hydrates it from the local cache.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextUserKey, user)
	c.Locals(contextSessionKey, handler.sessions.Open(user.ID))
	return c.Next()
}
