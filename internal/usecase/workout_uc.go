package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type WorkoutUC struct {
	Workouts domain.WorkoutRepo
}

func (uc *WorkoutUC) CreateExercise(ctx context.Context, e *domain.Exercise) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return uc.Workouts.SaveExercise(ctx, e)
}

func (uc *WorkoutUC) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return uc.Workouts.ListExercises(ctx)
}

func (uc *WorkoutUC) CreatePlan(ctx context.Context, p *domain.WorkoutPlan) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return uc.Workouts.SavePlan(ctx, p)
}

func (uc *WorkoutUC) GetPlan(ctx context.Context, id uuid.UUID) (*domain.WorkoutPlan, error) {
	return uc.Workouts.FindPlan(ctx, id)
}

func (uc *WorkoutUC) ListPlans(ctx context.Context) ([]domain.WorkoutPlan, error) {
	return uc.Workouts.ListPlans(ctx)
}

// LogSession records a completed workout against an existing plan.
func (uc *WorkoutUC) LogSession(ctx context.Context, l *domain.WorkoutLog) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if _, err := uc.Workouts.FindPlan(ctx, l.WorkoutPlanID); err != nil {
		return err
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return uc.Workouts.SaveLog(ctx, l)
}

func (uc *WorkoutUC) ListLogs(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutLog, error) {
	return uc.Workouts.ListLogsByUser(ctx, userID)
}
