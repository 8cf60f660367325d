package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type ProgressUC struct {
	Progress domain.ProgressRepo
}

// LogWeight records today's weight for the user. The (user, day) unique
// index turns a second entry for the same day into ErrConflict.
func (uc *ProgressUC) LogWeight(ctx context.Context, l *domain.WeightLog) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.DateLogged.IsZero() {
		l.DateLogged = time.Now().Truncate(24 * time.Hour)
	}
	return uc.Progress.SaveLog(ctx, l)
}

func (uc *ProgressUC) History(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.WeightLog, error) {
	return uc.Progress.ListByUser(ctx, userID, from, to)
}
