package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mentorat/mentoring_backend/models"
)

type menteeRepository struct {
	db *gorm.DB
}

func NewMenteeRepository(db *gorm.DB) MenteeRepository {
	return &menteeRepository{db: db}
}

func (r *menteeRepository) Create(ctx context.Context, mentee *models.Mentee) error {
	return r.db.WithContext(ctx).Create(mentee).Error
}

func (r *menteeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Mentee, error) {
	var mentee models.Mentee
	if err := r.db.WithContext(ctx).First(&mentee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &mentee, nil
}

func (r *menteeRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Mentee, error) {
	var mentee models.Mentee
	if err := r.db.WithContext(ctx).First(&mentee, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &mentee, nil
}

func (r *menteeRepository) List(ctx context.Context) ([]models.Mentee, error) {
	var mentees []models.Mentee
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&mentees).Error; err != nil {
		return nil, err
	}
	return mentees, nil
}

func (r *menteeRepository) Updates(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error) {
	fields["updated_at"] = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&models.Mentee{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}
