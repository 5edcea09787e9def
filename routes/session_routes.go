package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mentorat/mentoring_backend/handlers"
	"github.com/mentorat/mentoring_backend/middleware"
)

func SessionRoutes(app *fiber.App, h *handlers.SessionHandler, v *handlers.VideocallHandler) {
	api := app.Group("/api/v1/mentoring")

	sessions := api.Group("/sessions", middleware.Protected())
	sessions.Get("", h.ListSessions)
	sessions.Post("", h.CreateSession)
	sessions.Get("/mentee/:menteeId", h.ListSessionsByMentee)
	sessions.Get("/:sessionId", h.GetSession)
	sessions.Put("/:sessionId", h.UpdateSession)
	sessions.Delete("/:sessionId", h.DeleteSession)
	sessions.Put("/:sessionId/confirm", h.ConfirmSession)
	sessions.Put("/:sessionId/cancel", h.CancelSession)
	sessions.Put("/:sessionId/complete", h.CompleteSession)

	videocall := api.Group("/videocall", middleware.Protected())
	videocall.Post("/create-room", v.CreateRoom)
	videocall.Post("/join-room", v.JoinRoom)
	videocall.Post("/end-room", v.EndRoom)
}
