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

func TestCatalogCreateGeneratesSlug(t *testing.T) {
	products := newFakeProductRepo()
	uc := &CatalogUC{Products: products}

	p := &domain.Product{Name: "Adjustable Dumbbell Set", Price: decimal.RequireFromString("129.00"), Stock: 5}
	require.NoError(t, uc.Create(context.Background(), p))
	assert.Equal(t, "adjustable-dumbbell-set", p.Slug)
	assert.NotEqual(t, uuid.Nil, p.ID)
}

func TestCatalogCreateSlugCollision(t *testing.T) {
	products := newFakeProductRepo()
	uc := &CatalogUC{Products: products}

	first := &domain.Product{Name: "Yoga Mat", Price: decimal.RequireFromString("20.00")}
	require.NoError(t, uc.Create(context.Background(), first))
	second := &domain.Product{Name: "Yoga Mat", Price: decimal.RequireFromString("25.00")}
	require.NoError(t, uc.Create(context.Background(), second))

	assert.Equal(t, "yoga-mat", first.Slug)
	assert.Equal(t, "yoga-mat-1", second.Slug)
}

func TestCatalogCreateInvalid(t *testing.T) {
	uc := &CatalogUC{Products: newFakeProductRepo()}

	p := &domain.Product{Name: "", Price: decimal.RequireFromString("-5"), Stock: -1}
	fe, ok := domain.AsFieldErrors(uc.Create(context.Background(), p))
	require.True(t, ok)
	assert.Contains(t, fe, "name")
	assert.Contains(t, fe, "price")
	assert.Contains(t, fe, "stock")
}

func TestCatalogRestock(t *testing.T) {
	products := newFakeProductRepo()
	uc := &CatalogUC{Products: products}

	p := &domain.Product{Name: "Kettlebell", Price: decimal.RequireFromString("45.00"), Stock: 2}
	require.NoError(t, uc.Create(context.Background(), p))

	require.NoError(t, uc.Restock(context.Background(), p.ID, 8))
	got, err := products.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock)

	fe, ok := domain.AsFieldErrors(uc.Restock(context.Background(), p.ID, 0))
	require.True(t, ok)
	assert.Contains(t, fe, "quantity")
}
