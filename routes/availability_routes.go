package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mentorat/mentoring_backend/handlers"
	"github.com/mentorat/mentoring_backend/middleware"
)

func AvailabilityRoutes(app *fiber.App, h *handlers.AvailabilityHandler) {
	api := app.Group("/api/v1/mentoring/availability")

	// Reads are public so the booking page can render a calendar without a
	// session token.
	api.Get("/weekly", h.ListWeekly)
	api.Get("/date/:date", h.GetSpecificDate)
	api.Get("/resolve/:date", h.ResolveDate)

	admin := api.Group("", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/weekly", h.CreateWeekly)
	admin.Put("/weekly/:availabilityId", h.UpdateWeekly)
	admin.Delete("/weekly/:availabilityId", h.DeleteWeekly)
	admin.Post("/date", h.SetSpecificDate)
}
