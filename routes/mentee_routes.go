package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mentorat/mentoring_backend/handlers"
	"github.com/mentorat/mentoring_backend/middleware"
)

func MenteeRoutes(app *fiber.App, h *handlers.MenteeHandler) {
	api := app.Group("/api/v1/mentoring/mentees", middleware.Protected())

	api.Post("", h.CreateMentee)
	api.Get("", h.ListMentees)
	api.Get("/user/:userId", h.GetMenteeByUser)
	api.Get("/:menteeId", h.GetMentee)
	api.Put("/:menteeId", h.UpdateMentee)
}
