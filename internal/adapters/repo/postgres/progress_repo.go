package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type ProgressRepo struct{ db *gorm.DB }

func NewProgressRepo(db *gorm.DB) *ProgressRepo { return &ProgressRepo{db: db} }

func (r *ProgressRepo) SaveLog(ctx context.Context, l *domain.WeightLog) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *ProgressRepo) ListByUser(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.WeightLog, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("date_logged >= ?", *from)
	}
	if to != nil {
		q = q.Where("date_logged <= ?", *to)
	}
	var list []domain.WeightLog
	if err := q.Order("date_logged desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
