package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
)

func (handler *Handler) ListTodos(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(session.Todos())
}

func (handler *Handler) CreateTodo(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input todoInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	todo, err := handler.todoService.Create(session, input.Text, input.DueDate)
	switch {
	case errors.Is(err, services.ErrTodoInvalid):
		return apiError(c, fiber.StatusBadRequest, "todo text is required")
	case errors.Is(err, services.ErrInvalidDay):
		return apiError(c, fiber.StatusBadRequest, "due date must be YYYY-MM-DD")
	case err != nil:
		handler.logger.Printf("create todo: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "todo creation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(todo)
}

func (handler *Handler) ToggleTodo(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	todo, err := handler.todoService.Toggle(session, c.Params("id"))
	switch {
	case errors.Is(err, services.ErrTodoNotFound):
		return apiError(c, fiber.StatusNotFound, "todo not found")
	case err != nil:
		handler.logger.Printf("toggle todo: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "todo toggle failed")
	}
	return c.JSON(todo)
}

func (handler *Handler) DeleteTodo(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	err := handler.todoService.Delete(session, c.Params("id"))
	switch {
	case errors.Is(err, services.ErrTodoNotFound):
		return apiError(c, fiber.StatusNotFound, "todo not found")
	case err != nil:
		handler.logger.Printf("delete todo: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "todo delete failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
