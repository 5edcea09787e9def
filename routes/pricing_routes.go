package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mentorat/mentoring_backend/handlers"
	"github.com/mentorat/mentoring_backend/middleware"
)

func PricingRoutes(app *fiber.App, h *handlers.PricingHandler) {
	api := app.Group("/api/v1/mentoring/pricing")

	api.Get("", h.ListPricing)
	api.Get("/:pricingId", h.GetPricing)

	admin := api.Group("", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", h.CreatePricing)
	admin.Put("/:pricingId", h.UpdatePricing)
	admin.Delete("/:pricingId", h.DeletePricing)
}
