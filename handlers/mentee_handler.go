package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mentorat/mentoring_backend/services"
)

type MenteeHandler struct {
	mentees *services.MenteeService
}

func NewMenteeHandler(mentees *services.MenteeService) *MenteeHandler {
	return &MenteeHandler{mentees: mentees}
}

type CreateMenteeRequest struct {
	UserID          *string  `json:"user_id,omitempty"`
	FullName        *string  `json:"full_name,omitempty"`
	Email           *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string  `json:"phone,omitempty"`
	Topic           *string  `json:"topic,omitempty"`
	Message         *string  `json:"message,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	Goals           *string  `json:"goals,omitempty"`
	SkillsToImprove []string `json:"skills_to_improve,omitempty"`
}

func (h *MenteeHandler) CreateMentee(c *fiber.Ctx) error {
	var req CreateMenteeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	var userID *uuid.UUID
	if req.UserID != nil && *req.UserID != "" {
		parsed, err := uuid.Parse(*req.UserID)
		if err != nil {
			return fail(c, services.ErrInvalidReference)
		}
		userID = &parsed
	}

	mentee, err := h.mentees.Create(c.Context(), currentIdentity(c), services.CreateMenteeInput{
		UserID:          userID,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Topic:           req.Topic,
		Message:         req.Message,
		Bio:             req.Bio,
		Goals:           req.Goals,
		SkillsToImprove: req.SkillsToImprove,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mentee)
}

func (h *MenteeHandler) ListMentees(c *fiber.Ctx) error {
	mentees, err := h.mentees.List(c.Context(), currentIdentity(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(mentees)
}

func (h *MenteeHandler) GetMentee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("menteeId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	mentee, err := h.mentees.GetByID(c.Context(), currentIdentity(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(mentee)
}

func (h *MenteeHandler) GetMenteeByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	mentee, err := h.mentees.GetByUserID(c.Context(), currentIdentity(c), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(mentee)
}

type UpdateMenteeRequest struct {
	Bio             *string   `json:"bio,omitempty"`
	Goals           *string   `json:"goals,omitempty"`
	SkillsToImprove *[]string `json:"skills_to_improve,omitempty"`
	Status          *string   `json:"status,omitempty" validate:"omitempty,oneof=pending accepted rejected"`
}

func (h *MenteeHandler) UpdateMentee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("menteeId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	var req UpdateMenteeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	mentee, err := h.mentees.Update(c.Context(), currentIdentity(c), id, services.UpdateMenteeInput{
		Bio:             req.Bio,
		Goals:           req.Goals,
		SkillsToImprove: req.SkillsToImprove,
		Status:          req.Status,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(mentee)
}
