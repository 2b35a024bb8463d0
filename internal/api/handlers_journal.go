package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
)

func (handler *Handler) ListJournal(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(session.Journal())
}

func (handler *Handler) CreateJournalEntry(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input services.JournalInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.journalService.Create(session, input)
	switch {
	case errors.Is(err, services.ErrJournalInvalid):
		return apiError(c, fiber.StatusBadRequest, "subject and a YYYY-MM-DD date are required")
	case err != nil:
		handler.logger.Printf("create journal entry: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "journal write failed")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateJournalEntry(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input services.JournalInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.journalService.Update(session, c.Params("id"), input)
	switch {
	case errors.Is(err, services.ErrJournalNotFound):
		return apiError(c, fiber.StatusNotFound, "journal entry not found")
	case errors.Is(err, services.ErrJournalInvalid):
		return apiError(c, fiber.StatusBadRequest, "subject and a YYYY-MM-DD date are required")
	case err != nil:
		handler.logger.Printf("update journal entry: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "journal write failed")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteJournalEntry(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	err := handler.journalService.Delete(session, c.Params("id"))
	switch {
	case errors.Is(err, services.ErrJournalNotFound):
		return apiError(c, fiber.StatusNotFound, "journal entry not found")
	case err != nil:
		handler.logger.Printf("delete journal entry: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "journal delete failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
