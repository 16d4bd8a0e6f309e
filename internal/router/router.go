// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/moodsnap/moodsnap/internal/config"
	"github.com/moodsnap/moodsnap/internal/handler"
	"github.com/moodsnap/moodsnap/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication:
// the health check and the public mood/advisory table.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/moods", handler.Moods)
}

// RegisterAuth registers authentication routes. Unauthenticated token
// operations live under /v1/auth; /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token: the presented token is revoked and a new
	// pair is returned.
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterMood registers the photo upload and history routes. All of them
// require a bearer token; the rate limiter runs after auth so its key can
// include the caller's identity.
func RegisterMood(e *echo.Echo, m *handler.MoodHandler, jwtSecret string,
	rl config.RateLimitConfig, rdb *redis.Client) {

	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RateLimit(rl, rdb))

	g.POST("/upload", m.Upload)
	g.GET("/history", m.History)
	g.GET("/logs/:id", m.GetLog)
	g.DELETE("/logs/:id", m.DeleteLog)
	g.GET("/logs/:id/thumbnail", m.Thumbnail)
}
