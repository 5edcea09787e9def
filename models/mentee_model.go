package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MenteeStatusPending  = "pending"
	MenteeStatusAccepted = "accepted"
	MenteeStatusRejected = "rejected"
)

type Mentee struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	FullName        *string    `gorm:"size:255" json:"full_name"`
	Email           *string    `gorm:"size:255" json:"email"`
	Phone           *string    `gorm:"size:50" json:"phone"`
	Topic           *string    `gorm:"size:255" json:"topic"`
	Message         *string    `gorm:"type:text" json:"message"`
	Bio             *string    `gorm:"type:text" json:"bio"`
	Goals           *string    `gorm:"type:text" json:"goals"`
	SkillsToImprove []string   `gorm:"serializer:json;type:text" json:"skills_to_improve"`
	Status          string     `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenteeWithUser is the read-model shape embedding the linked user record.
// The password field of User carries a "-" json tag and is additionally
// cleared before embedding.
type MenteeWithUser struct {
	Mentee
	User *User `json:"user,omitempty"`
}
