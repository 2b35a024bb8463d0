package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
)

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(session.Habits())
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input services.CreateHabitInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	habit, err := handler.habitService.Create(session, input)
	switch {
	case errors.Is(err, services.ErrInvalidDay):
		return apiError(c, fiber.StatusBadRequest, "start and end dates must be YYYY-MM-DD")
	case errors.Is(err, services.ErrHabitInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid habit")
	case err != nil:
		handler.logger.Printf("create habit: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "habit creation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

// CompleteHabit records a completion for one day. Conflicting and
// locked days map to distinct statuses so clients can explain the
// rejection.
func (handler *Handler) CompleteHabit(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input services.CompletionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	habit, err := handler.habitService.RecordCompletion(session, c.Params("id"), input)
	switch {
	case errors.Is(err, services.ErrInvalidDay):
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	case errors.Is(err, services.ErrHabitNotFound):
		return apiError(c, fiber.StatusNotFound, "habit not found")
	case errors.Is(err, services.ErrDayLocked):
		return apiError(c, fiber.StatusUnprocessableEntity, "day is locked for marking")
	case errors.Is(err, services.ErrAlreadyCompleted):
		return apiError(c, fiber.StatusConflict, "already completed for that day")
	case err != nil:
		handler.logger.Printf("record completion: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "completion failed")
	}
	return c.JSON(habit)
}

func (handler *Handler) ListProofs(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(session.Proofs())
}
