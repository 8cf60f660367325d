package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type CartUC struct {
	Carts    domain.CartRepo
	Products domain.ProductRepo
}

// Get returns the user's cart with its derived total, creating the cart on
// first use.
func (uc *CartUC) Get(ctx context.Context, userID uuid.UUID) (*domain.Cart, decimal.Decimal, error) {
	cart, err := uc.Carts.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return cart, cart.Total(), nil
}

// AddItem adds quantity of a product to the user's cart. An existing line
// for the product is incremented rather than duplicated; the increment is
// atomic at the store, so concurrent adds cannot lose updates.
func (uc *CartUC) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*domain.CartItem, error) {
	if quantity < 0 {
		errs := domain.FieldErrors{}
		errs.Add("quantity", "quantity must be zero or positive")
		return nil, errs
	}
	if _, err := uc.Products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	cart, err := uc.Carts.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.Carts.AddItem(ctx, cart.ID, productID, quantity)
}

// SetQuantity overwrites the line quantity instead of adding to it.
func (uc *CartUC) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*domain.CartItem, error) {
	if quantity < 0 {
		errs := domain.FieldErrors{}
		errs.Add("quantity", "quantity must be zero or positive")
		return nil, errs
	}
	cart, err := uc.Carts.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.Carts.SetQuantity(ctx, cart.ID, productID, quantity)
}

func (uc *CartUC) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	cart, err := uc.Carts.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return err
	}
	return uc.Carts.RemoveItem(ctx, cart.ID, productID)
}
