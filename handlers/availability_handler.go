package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mentorat/mentoring_backend/models"
	"github.com/mentorat/mentoring_backend/services"
)

type AvailabilityHandler struct {
	availability *services.AvailabilityService
}

func NewAvailabilityHandler(availability *services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

func (h *AvailabilityHandler) ListWeekly(c *fiber.Ctx) error {
	rules, err := h.availability.ListWeekly(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rules)
}

type CreateWeeklyRequest struct {
	DayOfWeek   int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime   string `json:"start_time" validate:"required,len=5"`
	EndTime     string `json:"end_time" validate:"required,len=5"`
	IsAvailable *bool  `json:"is_available,omitempty"`
}

func (h *AvailabilityHandler) CreateWeekly(c *fiber.Ctx) error {
	var req CreateWeeklyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	rule, err := h.availability.CreateWeekly(c.Context(), services.WeeklyAvailabilityInput{
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: isAvailable,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rule)
}

type UpdateWeeklyRequest struct {
	StartTime   *string `json:"start_time,omitempty" validate:"omitempty,len=5"`
	EndTime     *string `json:"end_time,omitempty" validate:"omitempty,len=5"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

func (h *AvailabilityHandler) UpdateWeekly(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("availabilityId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	var req UpdateWeeklyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	rule, err := h.availability.UpdateWeekly(c.Context(), id, services.UpdateWeeklyInput{
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rule)
}

func (h *AvailabilityHandler) DeleteWeekly(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("availabilityId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	if err := h.availability.DeleteWeekly(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Availability deleted successfully"})
}

func (h *AvailabilityHandler) GetSpecificDate(c *fiber.Ctx) error {
	rec, err := h.availability.GetSpecificDate(c.Context(), c.Params("date"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rec)
}

type SetSpecificDateRequest struct {
	Date           string                 `json:"date" validate:"required,len=10"`
	IsAvailable    *bool                  `json:"is_available,omitempty"`
	AvailableSlots []models.AvailableSlot `json:"available_slots,omitempty"`
}

func (h *AvailabilityHandler) SetSpecificDate(c *fiber.Ctx) error {
	var req SetSpecificDateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	rec, err := h.availability.SetSpecificDate(c.Context(), services.SpecificDateInput{
		Date:           req.Date,
		IsAvailable:    isAvailable,
		AvailableSlots: req.AvailableSlots,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rec)
}

func (h *AvailabilityHandler) ResolveDate(c *fiber.Ctx) error {
	resolved, err := h.availability.Resolve(c.Context(), c.Params("date"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resolved)
}
