package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldez/fitpulse/internal/domain"
)

func TestLogWeightDefaultsDate(t *testing.T) {
	uc := &ProgressUC{Progress: &fakeProgressRepo{}}

	entry := &domain.WeightLog{UserID: uuid.New(), WeightKG: decimal.RequireFromString("82.5")}
	require.NoError(t, uc.LogWeight(context.Background(), entry))
	assert.False(t, entry.DateLogged.IsZero())
	assert.NotEqual(t, uuid.Nil, entry.ID)
}

func TestLogWeightOnePerDay(t *testing.T) {
	uc := &ProgressUC{Progress: &fakeProgressRepo{}}
	userID := uuid.New()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, uc.LogWeight(context.Background(), &domain.WeightLog{
		UserID: userID, WeightKG: decimal.RequireFromString("82.5"), DateLogged: day,
	}))
	err := uc.LogWeight(context.Background(), &domain.WeightLog{
		UserID: userID, WeightKG: decimal.RequireFromString("82.1"), DateLogged: day,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogWeightRejectsNonPositive(t *testing.T) {
	uc := &ProgressUC{Progress: &fakeProgressRepo{}}

	err := uc.LogWeight(context.Background(), &domain.WeightLog{
		UserID: uuid.New(), WeightKG: decimal.Zero,
	})
	fe, ok := domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fe, "weight_kg")
}

func TestHistoryRange(t *testing.T) {
	uc := &ProgressUC{Progress: &fakeProgressRepo{}}
	userID := uuid.New()

	for _, d := range []int{1, 10, 20} {
		require.NoError(t, uc.LogWeight(context.Background(), &domain.WeightLog{
			UserID:     userID,
			WeightKG:   decimal.RequireFromString("80"),
			DateLogged: time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC),
		}))
	}

	from := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	list, err := uc.History(context.Background(), userID, &from, &to)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
