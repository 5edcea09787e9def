package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mentorat/mentoring_backend/models"
)

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) ListWeekly(ctx context.Context) ([]models.WeeklyAvailability, error) {
	var rules []models.WeeklyAvailability
	if err := r.db.WithContext(ctx).Order("day_of_week, start_time").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *availabilityRepository) ListWeeklyByDay(ctx context.Context, dayOfWeek int) ([]models.WeeklyAvailability, error) {
	var rules []models.WeeklyAvailability
	err := r.db.WithContext(ctx).
		Where("day_of_week = ?", dayOfWeek).
		Order("start_time").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *availabilityRepository) GetWeeklyByID(ctx context.Context, id uuid.UUID) (*models.WeeklyAvailability, error) {
	var rule models.WeeklyAvailability
	if err := r.db.WithContext(ctx).First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *availabilityRepository) CreateWeekly(ctx context.Context, rule *models.WeeklyAvailability) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *availabilityRepository) UpdateWeekly(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error) {
	fields["updated_at"] = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&models.WeeklyAvailability{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *availabilityRepository) DeleteWeekly(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.WeeklyAvailability{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *availabilityRepository) GetSpecificByDate(ctx context.Context, date string) (*models.SpecificDateAvailability, error) {
	var rec models.SpecificDateAvailability
	if err := r.db.WithContext(ctx).First(&rec, "date = ?", date).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpsertSpecific inserts or fully replaces the record for rec.Date in one
// statement, so concurrent writers for the same date cannot interleave a
// find-then-write.
func (r *availabilityRepository) UpsertSpecific(ctx context.Context, rec *models.SpecificDateAvailability) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_available", "available_slots", "updated_at"}),
		}).
		Create(rec).Error
}
