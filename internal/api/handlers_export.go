package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
)

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := handler.exportService.Export(session, *user)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lifesync_export.json"`)
	return c.JSON(payload)
}

// ImportJSON restores a backup into the current device view. The remote
// store is untouched.
func (handler *Handler) ImportJSON(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	err := handler.exportService.Import(session, c.Body())
	switch {
	case errors.Is(err, services.ErrImportInvalid):
		return apiError(c, fiber.StatusBadRequest, "backup file is not valid")
	case err != nil:
		handler.logger.Printf("import backup: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "import failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ResetData drops this device's local copy of the user's data.
func (handler *Handler) ResetData(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.exportService.Reset(session); err != nil {
		handler.logger.Printf("reset data: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "reset failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
