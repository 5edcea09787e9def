package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mentorat/mentoring_backend/models"
)

// The store handle is injected at construction so every service can run
// against a test double instead of a process-wide *gorm.DB.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

type MenteeRepository interface {
	Create(ctx context.Context, mentee *models.Mentee) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Mentee, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Mentee, error)
	List(ctx context.Context) ([]models.Mentee, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.MentoringSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MentoringSession, error)
	List(ctx context.Context) ([]models.MentoringSession, error)
	ListByMenteeRef(ctx context.Context, ref string) ([]models.MentoringSession, error)
	ListConfirmedBetween(ctx context.Context, from, to time.Time) ([]models.MentoringSession, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error)
	UpdateWhereStatus(ctx context.Context, id uuid.UUID, allowedFrom []string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type AvailabilityRepository interface {
	ListWeekly(ctx context.Context) ([]models.WeeklyAvailability, error)
	ListWeeklyByDay(ctx context.Context, dayOfWeek int) ([]models.WeeklyAvailability, error)
	GetWeeklyByID(ctx context.Context, id uuid.UUID) (*models.WeeklyAvailability, error)
	CreateWeekly(ctx context.Context, rule *models.WeeklyAvailability) error
	UpdateWeekly(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error)
	DeleteWeekly(ctx context.Context, id uuid.UUID) (int64, error)
	GetSpecificByDate(ctx context.Context, date string) (*models.SpecificDateAvailability, error)
	UpsertSpecific(ctx context.Context, rec *models.SpecificDateAvailability) error
}

type PricingRepository interface {
	Create(ctx context.Context, pricing *models.MentoringPricing) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MentoringPricing, error)
	List(ctx context.Context) ([]models.MentoringPricing, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type Repository struct {
	User         UserRepository
	Mentee       MenteeRepository
	Session      SessionRepository
	Availability AvailabilityRepository
	Pricing      PricingRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Mentee:       NewMenteeRepository(db),
		Session:      NewSessionRepository(db),
		Availability: NewAvailabilityRepository(db),
		Pricing:      NewPricingRepository(db),
	}
}
