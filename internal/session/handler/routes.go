package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *SessionHandler) {
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/refresh", h.Refresh)
	app.Get("/api/v1/session", h.OptionalAuth, h.Session)

	// Authenticated endpoints
	app.Delete("/api/v1/session", h.RequireAuth, h.Logout)
	app.Get("/api/v1/me", h.RequireAuth, h.Me)
}
