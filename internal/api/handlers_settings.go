package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(session.Settings())
}

func (handler *Handler) ToggleSound(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	settings, err := handler.settingsService.ToggleSound(session)
	if err != nil {
		handler.logger.Printf("toggle sound: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "settings update failed")
	}
	return c.JSON(settings)
}

func (handler *Handler) ToggleDarkMode(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	settings, err := handler.settingsService.ToggleDarkMode(session)
	if err != nil {
		handler.logger.Printf("toggle dark mode: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "settings update failed")
	}
	return c.JSON(settings)
}
