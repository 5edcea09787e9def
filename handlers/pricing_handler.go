package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mentorat/mentoring_backend/services"
)

type PricingHandler struct {
	pricing *services.PricingService
}

func NewPricingHandler(pricing *services.PricingService) *PricingHandler {
	return &PricingHandler{pricing: pricing}
}

func (h *PricingHandler) ListPricing(c *fiber.Ctx) error {
	pricing, err := h.pricing.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pricing)
}

func (h *PricingHandler) GetPricing(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("pricingId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	pricing, err := h.pricing.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pricing)
}

type CreatePricingRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"min=0"`
	Duration    int     `json:"duration" validate:"required,min=15,max=480"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (h *PricingHandler) CreatePricing(c *fiber.Ctx) error {
	var req CreatePricingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	pricing, err := h.pricing.Create(c.Context(), services.PricingInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		IsActive:    isActive,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pricing)
}

type UpdatePricingRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,min=15,max=480"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

func (h *PricingHandler) UpdatePricing(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("pricingId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	var req UpdatePricingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	pricing, err := h.pricing.Update(c.Context(), id, services.UpdatePricingInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pricing)
}

func (h *PricingHandler) DeletePricing(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("pricingId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	if err := h.pricing.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pricing deleted successfully"})
}
