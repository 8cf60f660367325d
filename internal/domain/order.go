package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// statusRank orders the forward path pending -> paid -> shipped -> completed.
// cancelled sits outside the path and is handled separately.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusPaid:      1,
	OrderStatusShipped:   2,
	OrderStatusCompleted: 3,
}

// Order is an immutable snapshot of a cart at checkout time. The item set
// and total are frozen at creation; only status and shipping address may
// change afterwards. CartID records provenance but is never consulted for
// totals.
type Order struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID   `gorm:"type:uuid;index"`
	CartID          uuid.UUID   `gorm:"type:uuid;index"`
	Status          OrderStatus `gorm:"type:varchar(20);index"`
	ShippingAddress string      `gorm:"type:text"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2)"`
	Items           []OrderItem     `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (o *Order) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(o.ShippingAddress) == "" {
		errs.Add("shipping_address", "shipping address cannot be blank")
	}
	if !o.Status.Valid() {
		errs.Add("status", "unknown order status")
	}
	if len(o.Items) == 0 {
		errs.Add("items", "order must contain at least one item")
	}
	return errs.OrNil()
}

// TransitionTo moves the order forward along pending -> paid -> shipped ->
// completed. Re-applying the current status is a no-op; leaving a terminal
// state (cancelled, completed) or moving backward is ErrInvalidTransition.
// Cancellation has its own rules and is not handled here.
func (o *Order) TransitionTo(next OrderStatus) error {
	if next == o.Status {
		return nil
	}
	if o.Status == OrderStatusCancelled || o.Status == OrderStatusCompleted {
		return ErrInvalidTransition
	}
	to, ok := statusRank[next]
	if !ok {
		return ErrInvalidTransition
	}
	if to < statusRank[o.Status] {
		return ErrInvalidTransition
	}
	o.Status = next
	return nil
}

// OrderItem is a frozen cart line: the price is captured at order creation
// and never tracks later product price changes.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_order_items_order_product"`
	ProductID uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_order_items_order_product"`
	Name      string          `gorm:"size:255"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)"`
}

func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}
