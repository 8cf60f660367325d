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

func TestCartAddItemAggregates(t *testing.T) {
	products := newFakeProductRepo()
	carts := newFakeCartRepo()
	uc := &CartUC{Carts: carts, Products: products}

	p := &domain.Product{ID: uuid.New(), Name: "Whey", Price: decimal.RequireFromString("59.99"), Stock: 10}
	require.NoError(t, products.Save(context.Background(), p))

	userID := uuid.New()
	_, err := uc.AddItem(context.Background(), userID, p.ID, 2)
	require.NoError(t, err)
	item, err := uc.AddItem(context.Background(), userID, p.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, item.Quantity)

	cart, _, err := uc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartAddItemNegativeQuantity(t *testing.T) {
	uc := &CartUC{Carts: newFakeCartRepo(), Products: newFakeProductRepo()}

	_, err := uc.AddItem(context.Background(), uuid.New(), uuid.New(), -1)
	fe, ok := domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fe, "quantity")
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	uc := &CartUC{Carts: newFakeCartRepo(), Products: newFakeProductRepo()}

	_, err := uc.AddItem(context.Background(), uuid.New(), uuid.New(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartSetQuantityOverwrites(t *testing.T) {
	products := newFakeProductRepo()
	carts := newFakeCartRepo()
	uc := &CartUC{Carts: carts, Products: products}

	p := &domain.Product{ID: uuid.New(), Name: "Creatine", Price: decimal.RequireFromString("24.99"), Stock: 5}
	require.NoError(t, products.Save(context.Background(), p))

	userID := uuid.New()
	_, err := uc.AddItem(context.Background(), userID, p.ID, 4)
	require.NoError(t, err)

	item, err := uc.SetQuantity(context.Background(), userID, p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}
