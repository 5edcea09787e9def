package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mentorat/mentoring_backend/handlers"
	"github.com/mentorat/mentoring_backend/middleware"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/me", middleware.Protected(), h.Me)
}
