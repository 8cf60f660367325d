package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart holds the items a user intends to buy. There is exactly one cart per
// user; it outlives checkout (items are snapshotted into an order and the
// cart is emptied).
type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	Items     []CartItem `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total is always derived from the items, never stored.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].LineTotal())
	}
	return total.Round(2)
}

// CartItem is one product line in a cart. The (cart, product) pair is
// unique: adding the same product again increments the quantity in place.
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_items_cart_product"`
	Product   Product
	Quantity  int `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

func (i *CartItem) Validate() error {
	errs := FieldErrors{}
	if i.Quantity < 0 {
		errs.Add("quantity", "quantity must be zero or positive")
	}
	return errs.OrNil()
}
