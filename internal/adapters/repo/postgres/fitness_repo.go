package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type FitnessRepo struct{ db *gorm.DB }

func NewFitnessRepo(db *gorm.DB) *FitnessRepo { return &FitnessRepo{db: db} }

func (r *FitnessRepo) Save(ctx context.Context, m *domain.FitnessMeasurement) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *FitnessRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.FitnessMeasurement, error) {
	var m domain.FitnessMeasurement
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *FitnessRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FitnessMeasurement, error) {
	var list []domain.FitnessMeasurement
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *FitnessRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.FitnessMeasurement{}, "id = ?", id).Error
}
