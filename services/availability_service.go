package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mentorat/mentoring_backend/models"
	"github.com/mentorat/mentoring_backend/repository"
)

const dateLayout = "2006-01-02"

type AvailabilityService struct {
	availability repository.AvailabilityRepository
	logger       *zap.Logger
}

func NewAvailabilityService(availability repository.AvailabilityRepository, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{availability: availability, logger: logger}
}

func (s *AvailabilityService) ListWeekly(ctx context.Context) ([]models.WeeklyAvailability, error) {
	return s.availability.ListWeekly(ctx)
}

type WeeklyAvailabilityInput struct {
	DayOfWeek   int
	StartTime   string
	EndTime     string
	IsAvailable bool
}

func (s *AvailabilityService) CreateWeekly(ctx context.Context, input WeeklyAvailabilityInput) (*models.WeeklyAvailability, error) {
	rule := &models.WeeklyAvailability{
		DayOfWeek:   input.DayOfWeek,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		IsAvailable: input.IsAvailable,
	}
	if err := s.availability.CreateWeekly(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

type UpdateWeeklyInput struct {
	StartTime   *string
	EndTime     *string
	IsAvailable *bool
}

func (s *AvailabilityService) UpdateWeekly(ctx context.Context, id uuid.UUID, input UpdateWeeklyInput) (*models.WeeklyAvailability, error) {
	fields := map[string]any{}
	if input.StartTime != nil {
		fields["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		fields["end_time"] = *input.EndTime
	}
	if input.IsAvailable != nil {
		fields["is_available"] = *input.IsAvailable
	}

	rows, err := s.availability.UpdateWeekly(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAvailabilityNotFound
	}

	rule, err := s.availability.GetWeeklyByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, err
	}
	return rule, nil
}

func (s *AvailabilityService) DeleteWeekly(ctx context.Context, id uuid.UUID) error {
	rows, err := s.availability.DeleteWeekly(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAvailabilityNotFound
	}
	return nil
}

func (s *AvailabilityService) GetSpecificDate(ctx context.Context, date string) (*models.SpecificDateAvailability, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidReference
	}
	rec, err := s.availability.GetSpecificByDate(ctx, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, err
	}
	return rec, nil
}

type SpecificDateInput struct {
	Date           string
	IsAvailable    bool
	AvailableSlots []models.AvailableSlot
}

// SetSpecificDate upserts the override for one date; a later write fully
// replaces the prior availability flag and slot list.
func (s *AvailabilityService) SetSpecificDate(ctx context.Context, input SpecificDateInput) (*models.SpecificDateAvailability, error) {
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return nil, ErrInvalidReference
	}
	rec := &models.SpecificDateAvailability{
		Date:           input.Date,
		IsAvailable:    input.IsAvailable,
		AvailableSlots: input.AvailableSlots,
	}
	if err := s.availability.UpsertSpecific(ctx, rec); err != nil {
		return nil, err
	}
	// Re-read: on conflict the stored row keeps its original id.
	return s.availability.GetSpecificByDate(ctx, input.Date)
}

// ResolvedAvailability is the combined answer to "is date D available".
type ResolvedAvailability struct {
	Date        string                 `json:"date"`
	IsAvailable bool                   `json:"is_available"`
	Slots       []models.AvailableSlot `json:"slots"`
	Source      string                 `json:"source"`
}

// Resolve applies the precedence rule in one place: a specific-date override
// wins; otherwise the weekly rules for the date's weekday apply. With
// several weekly rules for the same day, the date is available if any
// available rule exists and every available window becomes a slot.
func (s *AvailabilityService) Resolve(ctx context.Context, date string) (*ResolvedAvailability, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidReference
	}

	rec, err := s.availability.GetSpecificByDate(ctx, date)
	if err == nil {
		return &ResolvedAvailability{
			Date:        date,
			IsAvailable: rec.IsAvailable,
			Slots:       rec.AvailableSlots,
			Source:      "specific_date",
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Weekly rules use 0 = Monday; Go's Weekday starts at Sunday.
	dayOfWeek := (int(day.Weekday()) + 6) % 7
	rules, err := s.availability.ListWeeklyByDay(ctx, dayOfWeek)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedAvailability{Date: date, Source: "weekly"}
	for _, rule := range rules {
		if !rule.IsAvailable {
			continue
		}
		resolved.IsAvailable = true
		resolved.Slots = append(resolved.Slots, models.AvailableSlot{
			StartTime: rule.StartTime,
			EndTime:   rule.EndTime,
		})
	}
	if len(rules) == 0 {
		resolved.Source = "none"
	}
	return resolved, nil
}
