package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WeightLog tracks a user's weight over time, at most one entry per user per
// day (unique index is the final authority under concurrent writes).
type WeightLog struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_weight_logs_user_date"`
	WeightKG   decimal.Decimal `gorm:"type:decimal(5,2)"`
	DateLogged time.Time       `gorm:"type:date;uniqueIndex:idx_weight_logs_user_date"`
}

func (l *WeightLog) Validate() error {
	errs := FieldErrors{}
	if !l.WeightKG.IsPositive() {
		errs.Add("weight_kg", "weight must be a positive number")
	}
	return errs.OrNil()
}
