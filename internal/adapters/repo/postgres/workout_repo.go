package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type WorkoutRepo struct{ db *gorm.DB }

func NewWorkoutRepo(db *gorm.DB) *WorkoutRepo { return &WorkoutRepo{db: db} }

func (r *WorkoutRepo) SaveExercise(ctx context.Context, e *domain.Exercise) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *WorkoutRepo) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	var list []domain.Exercise
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *WorkoutRepo) SavePlan(ctx context.Context, p *domain.WorkoutPlan) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
}

func (r *WorkoutRepo) FindPlan(ctx context.Context, id uuid.UUID) (*domain.WorkoutPlan, error) {
	var p domain.WorkoutPlan
	if err := r.db.WithContext(ctx).Preload("Exercises").First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *WorkoutRepo) ListPlans(ctx context.Context) ([]domain.WorkoutPlan, error) {
	var list []domain.WorkoutPlan
	if err := r.db.WithContext(ctx).Preload("Exercises").
		Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *WorkoutRepo) SaveLog(ctx context.Context, l *domain.WorkoutLog) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *WorkoutRepo) ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutLog, error) {
	var list []domain.WorkoutLog
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("date desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
