package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mentorat/mentoring_backend/models"
	"github.com/mentorat/mentoring_backend/repository"
)

type MenteeService struct {
	mentees repository.MenteeRepository
	users   repository.UserRepository
	logger  *zap.Logger
}

func NewMenteeService(mentees repository.MenteeRepository, users repository.UserRepository, logger *zap.Logger) *MenteeService {
	return &MenteeService{mentees: mentees, users: users, logger: logger}
}

type CreateMenteeInput struct {
	UserID          *uuid.UUID
	FullName        *string
	Email           *string
	Phone           *string
	Topic           *string
	Message         *string
	Bio             *string
	Goals           *string
	SkillsToImprove []string
}

// Create registers a mentee profile. A non-admin caller may only create
// their own profile, and at most one profile exists per user.
func (s *MenteeService) Create(ctx context.Context, actor Identity, input CreateMenteeInput) (*models.Mentee, error) {
	if !actor.IsAdmin {
		if input.UserID == nil || *input.UserID != actor.UserID {
			return nil, ErrForbidden
		}
	}

	if input.UserID != nil {
		if _, err := s.mentees.GetByUserID(ctx, *input.UserID); err == nil {
			return nil, ErrMenteeExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	mentee := &models.Mentee{
		UserID:          input.UserID,
		FullName:        input.FullName,
		Email:           input.Email,
		Phone:           input.Phone,
		Topic:           input.Topic,
		Message:         input.Message,
		Bio:             input.Bio,
		Goals:           input.Goals,
		SkillsToImprove: input.SkillsToImprove,
		Status:          models.MenteeStatusPending,
	}
	if err := s.mentees.Create(ctx, mentee); err != nil {
		return nil, err
	}

	s.logger.Info("mentee profile created", zap.String("mentee_id", mentee.ID.String()))
	return mentee, nil
}

// List returns all mentees with their user record embedded. A mentee whose
// user cannot be resolved is skipped rather than failing the listing.
// Admin only.
func (s *MenteeService) List(ctx context.Context, actor Identity) ([]models.MenteeWithUser, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	mentees, err := s.mentees.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.MenteeWithUser, 0, len(mentees))
	for i := range mentees {
		entry, ok := s.withUser(ctx, &mentees[i])
		if !ok {
			s.logger.Warn("mentee skipped from listing: user not resolvable",
				zap.String("mentee_id", mentees[i].ID.String()))
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

// GetByID returns one mentee with their user record when it resolves, or
// the bare mentee otherwise. Admin only.
func (s *MenteeService) GetByID(ctx context.Context, actor Identity, id uuid.UUID) (*models.MenteeWithUser, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	mentee, err := s.mentees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenteeNotFound
		}
		return nil, err
	}
	if entry, ok := s.withUser(ctx, mentee); ok {
		return &entry, nil
	}
	return &models.MenteeWithUser{Mentee: *mentee}, nil
}

// GetByUserID returns the mentee profile linked to a user. Allowed for an
// admin or for the user themself.
func (s *MenteeService) GetByUserID(ctx context.Context, actor Identity, userID uuid.UUID) (*models.Mentee, error) {
	if !actor.IsAdmin && actor.UserID != userID {
		return nil, ErrForbidden
	}
	mentee, err := s.mentees.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenteeNotFound
		}
		return nil, err
	}
	return mentee, nil
}

type UpdateMenteeInput struct {
	Bio             *string
	Goals           *string
	SkillsToImprove *[]string
	Status          *string
}

// Update edits a mentee profile. Bio, goals and skills may be changed by
// the owning user or an admin; the approval status only by an admin.
func (s *MenteeService) Update(ctx context.Context, actor Identity, id uuid.UUID, input UpdateMenteeInput) (*models.Mentee, error) {
	mentee, err := s.mentees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenteeNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin {
		if mentee.UserID == nil || *mentee.UserID != actor.UserID {
			return nil, ErrForbidden
		}
	}

	fields := map[string]any{}
	if input.Bio != nil {
		fields["bio"] = *input.Bio
	}
	if input.Goals != nil {
		fields["goals"] = *input.Goals
	}
	if input.SkillsToImprove != nil {
		// Map updates bypass the model serializer; store the encoded form.
		encoded, err := json.Marshal(*input.SkillsToImprove)
		if err != nil {
			return nil, err
		}
		fields["skills_to_improve"] = string(encoded)
	}
	if input.Status != nil {
		if !actor.IsAdmin {
			return nil, ErrForbidden
		}
		if !validMenteeStatus(*input.Status) {
			return nil, ErrInvalidReference
		}
		fields["status"] = *input.Status
	}

	rows, err := s.mentees.Updates(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrMenteeNotFound
	}
	return s.mentees.GetByID(ctx, id)
}

func (s *MenteeService) withUser(ctx context.Context, mentee *models.Mentee) (models.MenteeWithUser, bool) {
	if mentee.UserID == nil {
		return models.MenteeWithUser{}, false
	}
	user, err := s.users.GetByID(ctx, *mentee.UserID)
	if err != nil {
		return models.MenteeWithUser{}, false
	}
	sanitized := *user
	sanitized.Password = ""
	return models.MenteeWithUser{Mentee: *mentee, User: &sanitized}, true
}

func validMenteeStatus(status string) bool {
	switch status {
	case models.MenteeStatusPending, models.MenteeStatusAccepted, models.MenteeStatusRejected:
		return true
	}
	return false
}
