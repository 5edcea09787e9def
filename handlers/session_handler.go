package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mentorat/mentoring_backend/services"
)

type SessionHandler struct {
	sessions *services.SessionService
}

func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type CreateSessionRequest struct {
	MenteeIDs []string  `json:"mentee_ids"`
	MenteeID  *string   `json:"mentee_id,omitempty"`
	Date      time.Time `json:"date" validate:"required"`
	Duration  int       `json:"duration" validate:"required,min=15,max=480"`
	Notes     *string   `json:"notes,omitempty"`
	PricingID string    `json:"pricing_id" validate:"required"`
}

func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	session, err := h.sessions.Create(c.Context(), currentIdentity(c), services.CreateSessionInput{
		MenteeIDs: req.MenteeIDs,
		MenteeID:  req.MenteeID,
		Date:      req.Date,
		Duration:  req.Duration,
		Notes:     req.Notes,
		PricingID: req.PricingID,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	views, err := h.sessions.List(c.Context(), currentIdentity(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(views)
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	view, err := h.sessions.Get(c.Context(), currentIdentity(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

func (h *SessionHandler) ListSessionsByMentee(c *fiber.Ctx) error {
	sessions, err := h.sessions.ListByMentee(c.Context(), currentIdentity(c), c.Params("menteeId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sessions)
}

type UpdateSessionRequest struct {
	Status             *string    `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Notes              *string    `json:"notes,omitempty"`
	MeetingURL         *string    `json:"meeting_url,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	Date               *time.Time `json:"date,omitempty"`
	Duration           *int       `json:"duration,omitempty" validate:"omitempty,min=15,max=480"`
}

func (h *SessionHandler) UpdateSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	var req UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	session, err := h.sessions.Update(c.Context(), currentIdentity(c), id, services.UpdateSessionInput{
		Status:             req.Status,
		Notes:              req.Notes,
		MeetingURL:         req.MeetingURL,
		CancellationReason: req.CancellationReason,
		Date:               req.Date,
		Duration:           req.Duration,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(session)
}

func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	if err := h.sessions.Delete(c.Context(), currentIdentity(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Session deleted successfully"})
}

type ConfirmSessionRequest struct {
	MeetingURL string `json:"meeting_url"`
}

func (h *SessionHandler) ConfirmSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	var req ConfirmSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}

	session, err := h.sessions.Confirm(c.Context(), currentIdentity(c), id, req.MeetingURL)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(session)
}

type CancelSessionRequest struct {
	Reason string `json:"reason"`
}

func (h *SessionHandler) CancelSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	var req CancelSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}

	session, err := h.sessions.Cancel(c.Context(), currentIdentity(c), id, req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(session)
}

type CompleteSessionRequest struct {
	Notes string `json:"notes"`
}

func (h *SessionHandler) CompleteSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}

	var req CompleteSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}

	session, err := h.sessions.Complete(c.Context(), currentIdentity(c), id, req.Notes)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(session)
}
