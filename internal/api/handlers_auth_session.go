package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.SignUp(input.Name, input.Email, input.Password)
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusBadRequest, "valid email and password are required")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper, lower and digit")
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, "email already registered")
	case err != nil:
		handler.logger.Printf("register: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	if err := handler.setAuthCookie(c, &user, false); err != nil {
		handler.logger.Printf("register cookie: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}
	handler.sessions.Open(user.ID)
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.SignIn(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		handler.logger.Printf("login cookie: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}
	handler.sessions.Open(user.ID)
	return c.JSON(user)
}

// Logout tears down the sync session and expires the cookie. The local
// cache survives so the next login hydrates instantly.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	if user, ok := currentUser(c); ok {
		handler.sessions.Close(user.ID)
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// ForgotPassword answers identically for known and unknown emails.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	var input forgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	token, err := handler.authService.IssueResetToken(input.Email, time.Now())
	if err != nil {
		handler.logger.Printf("issue reset token: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "reset request failed")
	}
	if token != "" {
		if err := handler.mailer.SendPasswordReset(input.Email, token); err != nil {
			handler.logger.Printf("send reset mail: %v", err)
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	var input resetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	err := handler.authService.ResetPassword(input.Token, input.NewPassword)
	switch {
	case errors.Is(err, services.ErrResetTokenInvalid):
		return apiError(c, fiber.StatusUnauthorized, "reset token invalid or expired")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper, lower and digit")
	case err != nil:
		handler.logger.Printf("reset password: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "reset failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
