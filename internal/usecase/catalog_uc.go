package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type CatalogUC struct {
	Products domain.ProductRepo
}

func (uc *CatalogUC) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	if f.PageSize == 0 {
		f.PageSize = 20
	}
	return uc.Products.List(ctx, f)
}

func (uc *CatalogUC) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if slug == "" {
		return nil, errors.New("empty slug")
	}
	return uc.Products.FindBySlug(ctx, slug)
}

func (uc *CatalogUC) Create(ctx context.Context, p *domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if strings.TrimSpace(p.Slug) == "" {
		slug, err := domain.UniqueSlug(ctx, p.Name, uc.Products.SlugExists)
		if err != nil {
			return err
		}
		p.Slug = slug
	}
	return uc.Products.Save(ctx, p)
}

// Update rewrites the mutable product fields. The slug is kept stable so
// existing links survive renames.
func (uc *CatalogUC) Update(ctx context.Context, p *domain.Product) error {
	if p.ID == uuid.Nil {
		return errors.New("product id required")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return uc.Products.Save(ctx, p)
}

func (uc *CatalogUC) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errors.New("product id required")
	}
	return uc.Products.Delete(ctx, id)
}

func (uc *CatalogUC) Restock(ctx context.Context, id uuid.UUID, qty int) error {
	if qty <= 0 {
		errs := domain.FieldErrors{}
		errs.Add("quantity", "restock quantity must be positive")
		return errs
	}
	return uc.Products.AdjustStock(ctx, id, qty)
}

func (uc *CatalogUC) CreateCategory(ctx context.Context, c *domain.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return uc.Products.SaveCategory(ctx, c)
}

func (uc *CatalogUC) Categories(ctx context.Context) ([]domain.Category, error) {
	return uc.Products.ListCategories(ctx)
}
