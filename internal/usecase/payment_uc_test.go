package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldez/fitpulse/internal/domain"
)

func seedPaidOrder(t *testing.T) (*PaymentUC, *fakeOrderRepo, *domain.Order) {
	t.Helper()
	orders := newFakeOrderRepo(nil, nil)
	uc := &PaymentUC{Payments: newFakePaymentRepo(), Orders: orders}

	order := &domain.Order{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		Status:          domain.OrderStatusPending,
		ShippingAddress: "123 Main St",
		Total:           decimal.RequireFromString("31.00"),
		Items:           []domain.OrderItem{{ID: uuid.New(), Quantity: 2, Price: decimal.RequireFromString("15.50")}},
	}
	require.NoError(t, orders.Create(context.Background(), order))
	return uc, orders, order
}

func TestPaymentCreateAmountMismatch(t *testing.T) {
	uc, _, order := seedPaidOrder(t)

	_, err := uc.Create(context.Background(), order.ID, decimal.RequireFromString("30.99"))
	fe, ok := domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fe, "amount")

	_, err = uc.Create(context.Background(), order.ID, decimal.RequireFromString("-1"))
	fe, ok = domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fe, "amount")
}

func TestPaymentCreateOnePerOrder(t *testing.T) {
	uc, _, order := seedPaidOrder(t)

	_, err := uc.Create(context.Background(), order.ID, order.Total)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), order.ID, order.Total)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPaymentCompleteMarksOrderPaid(t *testing.T) {
	uc, orders, order := seedPaidOrder(t)

	payment, err := uc.Create(context.Background(), order.ID, order.Total)
	require.NoError(t, err)

	done, err := uc.Complete(context.Background(), payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, done.Status)
	require.NotNil(t, done.PaidAt)

	got, err := orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, got.Status)
}

func TestPaymentCompleteIdempotent(t *testing.T) {
	uc, _, order := seedPaidOrder(t)

	payment, err := uc.Create(context.Background(), order.ID, order.Total)
	require.NoError(t, err)

	first, err := uc.Complete(context.Background(), payment.ID)
	require.NoError(t, err)
	second, err := uc.Complete(context.Background(), payment.ID)
	require.NoError(t, err)
	assert.Equal(t, first.PaidAt, second.PaidAt)
}

func TestPaymentCompleteAfterFail(t *testing.T) {
	uc, _, order := seedPaidOrder(t)

	payment, err := uc.Create(context.Background(), order.ID, order.Total)
	require.NoError(t, err)

	_, err = uc.Fail(context.Background(), payment.ID)
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), payment.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
