package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
)

type calendarHabitView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// CalendarDay resolves the aggregate status of a single date, plus the
// per-habit breakdown and whether the day still accepts marking.
func (handler *Handler) CalendarDay(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date := c.Params("date")
	status, err := handler.habitService.StatusForDay(session, date)
	if errors.Is(err, services.ErrInvalidDay) {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	active := services.ActiveHabitsOn(session.Habits(), date)
	habits := make([]calendarHabitView, 0, len(active))
	for _, habit := range active {
		habits = append(habits, calendarHabitView{
			ID:        habit.ID,
			Name:      habit.Name,
			Completed: habit.CompletedOn(date),
		})
	}

	today := services.Today(handler.clock, handler.location)
	return c.JSON(fiber.Map{
		"date":   date,
		"status": status,
		"locked": services.IsDayLocked(date, today),
		"habits": habits,
	})
}

// CalendarMonth resolves every day of a YYYY-MM month at once.
func (handler *Handler) CalendarMonth(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	month := c.Query("month")
	if month == "" {
		return apiError(c, fiber.StatusBadRequest, "month query parameter is required")
	}
	statuses, err := handler.habitService.MonthStatuses(session, month)
	if errors.Is(err, services.ErrInvalidDay) {
		return apiError(c, fiber.StatusBadRequest, "month must be YYYY-MM")
	}
	return c.JSON(fiber.Map{"month": month, "days": statuses})
}
