package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/mentorat/mentoring_backend/services"
)

var validate = validator.New()

// currentIdentity decodes the caller identity from the JWT placed in locals
// by the auth middleware.
func currentIdentity(c *fiber.Ctx) services.Identity {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)

	userID, _ := uuid.Parse(claims["user_id"].(string))
	isAdmin, _ := claims["is_admin"].(bool)
	return services.Identity{UserID: userID, IsAdmin: isAdmin}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidReference):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrMenteeNotFound),
		errors.Is(err, services.ErrPricingNotFound),
		errors.Is(err, services.ErrAvailabilityNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrMenteeExists),
		errors.Is(err, services.ErrInvalidTransition):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{"detail": err.Error()})
}
