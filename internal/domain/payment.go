package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment records the one payment attached to an order. pending is the only
// non-terminal state: pending -> completed or pending -> failed, nothing
// leaves a terminal state.
type Payment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status    PaymentStatus   `gorm:"type:varchar(20);index"`
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Complete marks the payment completed. Completing an already-completed
// payment is a no-op; completing a failed one is rejected.
func (p *Payment) Complete(now time.Time) error {
	switch p.Status {
	case PaymentStatusCompleted:
		return nil
	case PaymentStatusFailed:
		return ErrInvalidTransition
	}
	p.Status = PaymentStatusCompleted
	p.PaidAt = &now
	return nil
}

// Fail marks the payment failed, with the mirrored terminal-state rules.
func (p *Payment) Fail() error {
	switch p.Status {
	case PaymentStatusFailed:
		return nil
	case PaymentStatusCompleted:
		return ErrInvalidTransition
	}
	p.Status = PaymentStatusFailed
	return nil
}
