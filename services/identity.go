package services

import "github.com/google/uuid"

// Identity is the caller identity decoded from the access token. The
// services trust it unconditionally; authenticating it is the API layer's
// concern.
type Identity struct {
	UserID  uuid.UUID
	IsAdmin bool
}
