package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type FitnessUC struct {
	Measurements domain.FitnessRepo
}

func (uc *FitnessUC) Record(ctx context.Context, m *domain.FitnessMeasurement) error {
	if err := m.Validate(time.Now()); err != nil {
		return err
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return uc.Measurements.Save(ctx, m)
}

func (uc *FitnessUC) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FitnessMeasurement, error) {
	return uc.Measurements.ListByUser(ctx, userID)
}

func (uc *FitnessUC) Get(ctx context.Context, id uuid.UUID) (*domain.FitnessMeasurement, error) {
	return uc.Measurements.FindByID(ctx, id)
}

func (uc *FitnessUC) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.Measurements.Delete(ctx, id)
}
