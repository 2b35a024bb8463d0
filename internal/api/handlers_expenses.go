package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
)

func (handler *Handler) ListExpenses(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(session.Expenses())
}

func (handler *Handler) CreateExpense(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input services.ExpenseInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	expense, err := handler.expenseService.Create(session, input)
	switch {
	case errors.Is(err, services.ErrExpenseInvalid):
		return apiError(c, fiber.StatusBadRequest, "positive amount, known category and YYYY-MM-DD date are required")
	case err != nil:
		handler.logger.Printf("create expense: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "expense creation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func (handler *Handler) UpdateExpense(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input services.ExpenseInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	expense, err := handler.expenseService.Update(session, c.Params("id"), input)
	switch {
	case errors.Is(err, services.ErrExpenseNotFound):
		return apiError(c, fiber.StatusNotFound, "expense not found")
	case errors.Is(err, services.ErrExpenseInvalid):
		return apiError(c, fiber.StatusBadRequest, "positive amount, known category and YYYY-MM-DD date are required")
	case err != nil:
		handler.logger.Printf("update expense: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "expense update failed")
	}
	return c.JSON(expense)
}

func (handler *Handler) DeleteExpense(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	err := handler.expenseService.Delete(session, c.Params("id"))
	switch {
	case errors.Is(err, services.ErrExpenseNotFound):
		return apiError(c, fiber.StatusNotFound, "expense not found")
	case err != nil:
		handler.logger.Printf("delete expense: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "expense delete failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
