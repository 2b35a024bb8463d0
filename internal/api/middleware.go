package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"github.com/rsahoo0530/LifeSync-V2/internal/syncer"
)

const (
	authCookieName    = "lifesync_auth"
	contextUserKey    = "current_user"
	contextSessionKey = "current_session"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentSession(c *fiber.Ctx) (*syncer.Session, bool) {
	session, ok := c.Locals(contextSessionKey).(*syncer.Session)
	return session, ok
}
