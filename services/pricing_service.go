package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mentorat/mentoring_backend/models"
	"github.com/mentorat/mentoring_backend/repository"
)

type PricingService struct {
	pricing repository.PricingRepository
	logger  *zap.Logger
}

func NewPricingService(pricing repository.PricingRepository, logger *zap.Logger) *PricingService {
	return &PricingService{pricing: pricing, logger: logger}
}

func (s *PricingService) List(ctx context.Context) ([]models.MentoringPricing, error) {
	return s.pricing.List(ctx)
}

func (s *PricingService) GetByID(ctx context.Context, id uuid.UUID) (*models.MentoringPricing, error) {
	pricing, err := s.pricing.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPricingNotFound
		}
		return nil, err
	}
	return pricing, nil
}

type PricingInput struct {
	Name        string
	Description string
	Price       float64
	Duration    int
	IsActive    bool
}

func (s *PricingService) Create(ctx context.Context, input PricingInput) (*models.MentoringPricing, error) {
	pricing := &models.MentoringPricing{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		IsActive:    input.IsActive,
	}
	if err := s.pricing.Create(ctx, pricing); err != nil {
		return nil, err
	}
	return pricing, nil
}

type UpdatePricingInput struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *int
	IsActive    *bool
}

func (s *PricingService) Update(ctx context.Context, id uuid.UUID, input UpdatePricingInput) (*models.MentoringPricing, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Duration != nil {
		fields["duration"] = *input.Duration
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}

	rows, err := s.pricing.Updates(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPricingNotFound
	}
	return s.pricing.GetByID(ctx, id)
}

// Delete removes a pricing entry unconditionally. Sessions referencing it
// keep their copied price and orphaned pricing_id; the ledger tolerates
// that rather than blocking the delete.
func (s *PricingService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.pricing.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPricingNotFound
	}
	s.logger.Info("pricing deleted", zap.String("pricing_id", id.String()))
	return nil
}
