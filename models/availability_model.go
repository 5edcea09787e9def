package models

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyAvailability is a recurring rule keyed by day of week.
// DayOfWeek uses 0 = Monday through 6 = Sunday.
type WeeklyAvailability struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DayOfWeek   int       `gorm:"not null" json:"day_of_week"`
	StartTime   string    `gorm:"size:5;not null" json:"start_time"`
	EndTime     string    `gorm:"size:5;not null" json:"end_time"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AvailableSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// SpecificDateAvailability overrides the weekly rules for one calendar date.
// At most one record exists per date; writes are upserts keyed by Date.
type SpecificDateAvailability struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Date           string          `gorm:"size:10;not null;uniqueIndex" json:"date"`
	IsAvailable    bool            `gorm:"default:true" json:"is_available"`
	AvailableSlots []AvailableSlot `gorm:"serializer:json;type:text" json:"available_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
