package services

import "errors"

// Sentinel errors returned by the mentoring services. Handlers map these to
// HTTP status codes; anything else is treated as an unexpected failure.
var (
	ErrForbidden            = errors.New("not authorized for this action")
	ErrInvalidReference     = errors.New("invalid reference format")
	ErrSessionNotFound      = errors.New("session not found")
	ErrMenteeNotFound       = errors.New("mentee not found")
	ErrPricingNotFound      = errors.New("pricing not found")
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrMenteeExists         = errors.New("a mentee profile already exists for this user")
	ErrInvalidTransition    = errors.New("session status does not allow this transition")
)
