package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type PaymentUC struct {
	Payments domain.PaymentRepo
	Orders   domain.OrderRepo
}

// Create opens the single payment for an order. The amount must match the
// frozen order total exactly; the unique constraint on order_id is the
// final authority against a concurrent double-create.
func (uc *PaymentUC) Create(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*domain.Payment, error) {
	order, err := uc.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	errs := domain.FieldErrors{}
	if amount.IsNegative() {
		errs.Add("amount", "amount must be zero or positive")
	} else if !amount.Equal(order.Total) {
		errs.Add("amount", "amount must equal the order total")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	payment := &domain.Payment{
		ID:      uuid.New(),
		OrderID: order.ID,
		Amount:  amount.Round(2),
		Status:  domain.PaymentStatusPending,
	}
	if err := uc.Payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Complete resolves the payment and moves the order to paid. Re-completing
// an already-completed payment is a harmless no-op.
func (uc *PaymentUC) Complete(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	payment, err := uc.Payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	already := payment.Status == domain.PaymentStatusCompleted
	if err := payment.Complete(time.Now()); err != nil {
		return nil, err
	}
	if already {
		return payment, nil
	}
	if err := uc.Payments.Save(ctx, payment); err != nil {
		return nil, err
	}
	order, err := uc.Orders.FindByID(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusPending {
		order.Status = domain.OrderStatusPaid
		if err := uc.Orders.Save(ctx, order); err != nil {
			return nil, err
		}
	}
	return payment, nil
}

func (uc *PaymentUC) Fail(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	payment, err := uc.Payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentStatusFailed {
		return payment, nil
	}
	if err := payment.Fail(); err != nil {
		return nil, err
	}
	if err := uc.Payments.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (uc *PaymentUC) GetByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Payment, error) {
	return uc.Payments.FindByOrder(ctx, orderID)
}
