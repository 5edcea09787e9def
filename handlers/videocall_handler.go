package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	config "github.com/mentorat/mentoring_backend/configs"
	"github.com/mentorat/mentoring_backend/services"
	"github.com/mentorat/mentoring_backend/utils"
)

// VideocallHandler manages meeting rooms for sessions. The media transport
// itself is an external provider; this only creates identifiers and join
// tokens.
type VideocallHandler struct {
	sessions *services.SessionService
}

func NewVideocallHandler(sessions *services.SessionService) *VideocallHandler {
	return &VideocallHandler{sessions: sessions}
}

type CreateRoomRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

func (h *VideocallHandler) CreateRoom(c *fiber.Ctx) error {
	identity := currentIdentity(c)
	if !identity.IsAdmin {
		return fail(c, services.ErrForbidden)
	}

	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return fail(c, services.ErrInvalidReference)
	}
	if _, err := h.sessions.Get(c.Context(), identity, sessionID); err != nil {
		return fail(c, err)
	}

	code, err := utils.GenerateRoomCode()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to create room"})
	}

	baseURL := config.Config("MEETING_BASE_URL")
	if baseURL == "" {
		baseURL = "https://meet.example.com"
	}

	roomID := "room_" + code
	return c.JSON(fiber.Map{
		"roomId":  roomID,
		"roomUrl": fmt.Sprintf("%s/%s", baseURL, roomID),
	})
}

type JoinRoomRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

func (h *VideocallHandler) JoinRoom(c *fiber.Ctx) error {
	var req JoinRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	identity := currentIdentity(c)
	token := fmt.Sprintf("token_%s_%s", req.RoomID, identity.UserID)
	return c.JSON(fiber.Map{"token": token})
}

type EndRoomRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

func (h *VideocallHandler) EndRoom(c *fiber.Ctx) error {
	if !currentIdentity(c).IsAdmin {
		return fail(c, services.ErrForbidden)
	}

	var req EndRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Room ended successfully"})
}
