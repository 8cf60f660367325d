package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderValidate(t *testing.T) {
	o := Order{
		Status:          OrderStatusPending,
		ShippingAddress: "123 Main St",
		Items:           []OrderItem{{Quantity: 1, Price: decimal.RequireFromString("10.00")}},
	}
	assert.NoError(t, o.Validate())
}

func TestOrderValidateEmptyItems(t *testing.T) {
	o := Order{Status: OrderStatusPending, ShippingAddress: "123 Main St"}
	fe, ok := AsFieldErrors(o.Validate())
	assert.True(t, ok)
	assert.Contains(t, fe, "items")
}

func TestOrderValidateBadStatus(t *testing.T) {
	o := Order{
		Status:          OrderStatus("refunded"),
		ShippingAddress: "123 Main St",
		Items:           []OrderItem{{Quantity: 1}},
	}
	fe, ok := AsFieldErrors(o.Validate())
	assert.True(t, ok)
	assert.Contains(t, fe, "status")
}

func TestOrderTransitionForwardOnly(t *testing.T) {
	o := Order{Status: OrderStatusPending}
	assert.NoError(t, o.TransitionTo(OrderStatusPaid))
	assert.NoError(t, o.TransitionTo(OrderStatusShipped))
	assert.NoError(t, o.TransitionTo(OrderStatusCompleted))
	assert.Equal(t, OrderStatusCompleted, o.Status)

	// same status is a no-op
	same := Order{Status: OrderStatusPaid}
	assert.NoError(t, same.TransitionTo(OrderStatusPaid))
}

func TestOrderTransitionBackwardRejected(t *testing.T) {
	o := Order{Status: OrderStatusShipped}
	assert.ErrorIs(t, o.TransitionTo(OrderStatusPaid), ErrInvalidTransition)
	assert.ErrorIs(t, o.TransitionTo(OrderStatusPending), ErrInvalidTransition)
	assert.Equal(t, OrderStatusShipped, o.Status)
}

func TestOrderTransitionOutOfTerminalRejected(t *testing.T) {
	cancelled := Order{Status: OrderStatusCancelled}
	assert.ErrorIs(t, cancelled.TransitionTo(OrderStatusShipped), ErrInvalidTransition)
	assert.ErrorIs(t, cancelled.TransitionTo(OrderStatusPaid), ErrInvalidTransition)
	assert.Equal(t, OrderStatusCancelled, cancelled.Status)

	completed := Order{Status: OrderStatusCompleted}
	assert.ErrorIs(t, completed.TransitionTo(OrderStatusPending), ErrInvalidTransition)
}

func TestOrderItemLineTotalFrozenPrice(t *testing.T) {
	item := OrderItem{Quantity: 4, Price: decimal.RequireFromString("7.25")}
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("29.00")))
}
