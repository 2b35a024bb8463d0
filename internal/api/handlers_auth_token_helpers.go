package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
)

// baseAuthCookie carries the attributes shared by issue and clear so the
// browser always matches the same cookie.
func (handler *Handler) baseAuthCookie() fiber.Cookie {
	return fiber.Cookie{
		Name:     authCookieName,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
	}
}

// setAuthCookie issues a signed token for the user. Without rememberMe the
// cookie is session-scoped and disappears when the browser closes.
func (handler *Handler) setAuthCookie(c *fiber.Ctx, user *models.User, rememberMe bool) error {
	tokenTTL := defaultAuthTokenTTL
	if rememberMe {
		tokenTTL = rememberAuthTokenTTL
	}

	token, err := handler.signAuthToken(user.ID, tokenTTL)
	if err != nil {
		return err
	}

	cookie := handler.baseAuthCookie()
	cookie.Value = token
	if rememberMe {
		cookie.Expires = time.Now().Add(tokenTTL)
	}
	c.Cookie(&cookie)
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	cookie := handler.baseAuthCookie()
	cookie.Expires = time.Now().Add(-1 * time.Hour)
	c.Cookie(&cookie)
}

func (handler *Handler) signAuthToken(userID uint, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultAuthTokenTTL
	}
	now := time.Now()

	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
}
