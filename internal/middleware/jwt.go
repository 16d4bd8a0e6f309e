package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moodsnap/moodsnap/internal/utils"
)

// EmailKey is the context key under which JWTAuth stores the token subject.
const EmailKey = "email"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject (the user's email) into the request
// context. The secret must match the one used when issuing tokens. Wrap
// protected routes with this so handlers can read the caller's identity
// via c.Get(middleware.EmailKey).
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			email, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set(EmailKey, email)
			return next(c)
		}
	}
}
