package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionStatusPending   = "pending"
	SessionStatusConfirmed = "confirmed"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// MentoringSession is the ledger record for one scheduled appointment.
// MenteeIDs is kept as plain strings rather than uuids: historical records
// carry free text where an id is expected, and reference validity is decided
// at read time by the assembler. MenteeID is the legacy single-reference
// field, still honoured when MenteeIDs is empty.
type MentoringSession struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MenteeIDs          []string  `gorm:"serializer:json;type:text" json:"mentee_ids"`
	MenteeID           *string   `gorm:"size:255" json:"mentee_id,omitempty"`
	Date               time.Time `gorm:"not null" json:"date"`
	Duration           int       `gorm:"not null" json:"duration"`
	Status             string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes              *string   `gorm:"type:text" json:"notes"`
	Price              float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	PricingID          string    `gorm:"size:255" json:"pricing_id"`
	MeetingURL         *string   `gorm:"size:255" json:"meeting_url"`
	CancellationReason *string   `gorm:"type:text" json:"cancellation_reason"`
	Version            int       `gorm:"not null;default:1" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionWithMentees embeds the denormalized mentee+user entries. Mentee
// (singular) duplicates the first entry for older API consumers.
type SessionWithMentees struct {
	MentoringSession
	Mentee  *MenteeWithUser  `json:"mentee,omitempty"`
	Mentees []MenteeWithUser `json:"mentees"`
}
