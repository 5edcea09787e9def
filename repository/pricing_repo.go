package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mentorat/mentoring_backend/models"
)

type pricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) PricingRepository {
	return &pricingRepository{db: db}
}

func (r *pricingRepository) Create(ctx context.Context, pricing *models.MentoringPricing) error {
	return r.db.WithContext(ctx).Create(pricing).Error
}

func (r *pricingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MentoringPricing, error) {
	var pricing models.MentoringPricing
	if err := r.db.WithContext(ctx).First(&pricing, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pricing, nil
}

func (r *pricingRepository) List(ctx context.Context) ([]models.MentoringPricing, error) {
	var pricing []models.MentoringPricing
	if err := r.db.WithContext(ctx).Order("price").Find(&pricing).Error; err != nil {
		return nil, err
	}
	return pricing, nil
}

func (r *pricingRepository) Updates(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error) {
	fields["updated_at"] = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&models.MentoringPricing{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *pricingRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.MentoringPricing{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
