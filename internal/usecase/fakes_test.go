package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mvaldez/fitpulse/internal/domain"
)

// In-memory repositories for exercising the use cases without a database.
// They honor the same error contracts as the postgres adapters.

type fakeProductRepo struct {
	products map[uuid.UUID]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*domain.Product{}}
}

func (r *fakeProductRepo) Save(ctx context.Context, p *domain.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProductRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.Stock += delta
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) SaveCategory(ctx context.Context, c *domain.Category) error { return nil }

func (r *fakeProductRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}

type fakeCartRepo struct {
	carts map[uuid.UUID]*domain.Cart // keyed by cart ID
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[uuid.UUID]*domain.Cart{}}
}

func (r *fakeCartRepo) FindOrCreateByUser(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	for _, c := range r.carts {
		if c.UserID == userID {
			return c, nil
		}
	}
	c := &domain.Cart{ID: uuid.New(), UserID: userID}
	r.carts[c.ID] = c
	return c, nil
}

func (r *fakeCartRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Cart, error) {
	c, ok := r.carts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (r *fakeCartRepo) AddItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*domain.CartItem, error) {
	c, ok := r.carts[cartID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			return &c.Items[i], nil
		}
	}
	c.Items = append(c.Items, domain.CartItem{
		ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: quantity,
	})
	return &c.Items[len(c.Items)-1], nil
}

func (r *fakeCartRepo) SetQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*domain.CartItem, error) {
	c, ok := r.carts[cartID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return &c.Items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeCartRepo) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error {
	c, ok := r.carts[cartID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCartRepo) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	c, ok := r.carts[cartID]
	if !ok {
		return domain.ErrNotFound
	}
	c.Items = nil
	return nil
}

type fakeOrderRepo struct {
	orders   map[uuid.UUID]*domain.Order
	products *fakeProductRepo
	carts    *fakeCartRepo
}

func newFakeOrderRepo(products *fakeProductRepo, carts *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*domain.Order{}, products: products, carts: carts}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	if r.products != nil {
		for i := range o.Items {
			if err := r.products.AdjustStock(ctx, o.Items[i].ProductID, -o.Items[i].Quantity); err != nil {
				return err
			}
		}
	}
	cp := *o
	r.orders[o.ID] = &cp
	if r.carts != nil {
		if err := r.carts.ClearItems(ctx, o.CartID); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeOrderRepo) Save(ctx context.Context, o *domain.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uuid.UUID]*domain.Payment{}}
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	for _, existing := range r.payments {
		if existing.OrderID == p.OrderID {
			return domain.ErrConflict
		}
	}
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) Save(ctx context.Context, p *domain.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) FindByOrder(ctx context.Context, orderID uuid.UUID) (*domain.Payment, error) {
	for _, p := range r.payments {
		if p.OrderID == orderID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeArticleRepo struct {
	articles map[uuid.UUID]*domain.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[uuid.UUID]*domain.Article{}}
}

func (r *fakeArticleRepo) Save(ctx context.Context, a *domain.Article) error {
	cp := *a
	r.articles[a.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	for _, a := range r.articles {
		if a.Slug == slug {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeArticleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, a := range r.articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeArticleRepo) List(ctx context.Context) ([]domain.Article, error) {
	var out []domain.Article
	for _, a := range r.articles {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeArticleRepo) ListPublished(ctx context.Context) ([]domain.Article, error) {
	var out []domain.Article
	for _, a := range r.articles {
		if a.IsPublished {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.articles, id)
	return nil
}

type fakeProgressRepo struct {
	logs []domain.WeightLog
}

func (r *fakeProgressRepo) SaveLog(ctx context.Context, l *domain.WeightLog) error {
	day := l.DateLogged.Truncate(24 * time.Hour)
	for i := range r.logs {
		if r.logs[i].UserID == l.UserID && r.logs[i].DateLogged.Truncate(24*time.Hour).Equal(day) {
			return domain.ErrConflict
		}
	}
	r.logs = append(r.logs, *l)
	return nil
}

func (r *fakeProgressRepo) ListByUser(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.WeightLog, error) {
	var out []domain.WeightLog
	for i := range r.logs {
		l := r.logs[i]
		if l.UserID != userID {
			continue
		}
		if from != nil && l.DateLogged.Before(*from) {
			continue
		}
		if to != nil && l.DateLogged.After(*to) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
