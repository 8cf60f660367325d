package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type OrderUC struct {
	Orders   domain.OrderRepo
	Carts    domain.CartRepo
	Products domain.ProductRepo
}

// Create converts the user's cart into an order. Every cart line is
// snapshotted with the product price frozen at this moment; later price
// changes never touch the order. The repository empties the cart in the
// same transaction that persists the order, so a failure leaves both the
// cart and the stock untouched.
func (uc *OrderUC) Create(ctx context.Context, userID uuid.UUID, shippingAddress string) (*domain.Order, error) {
	errs := domain.FieldErrors{}
	if strings.TrimSpace(shippingAddress) == "" {
		errs.Add("shipping_address", "shipping address cannot be blank")
	}
	cart, err := uc.Carts.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		errs.Add("cart", "cart is empty")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:              uuid.New(),
		UserID:          userID,
		CartID:          cart.ID,
		Status:          domain.OrderStatusPending,
		ShippingAddress: shippingAddress,
	}
	total := decimal.Zero
	for i := range cart.Items {
		it := &cart.Items[i]
		if it.Quantity == 0 {
			continue
		}
		line := domain.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Name:      it.Product.Name,
			Quantity:  it.Quantity,
			Price:     it.Product.Price,
		}
		total = total.Add(line.LineTotal())
		order.Items = append(order.Items, line)
	}
	order.Total = total.Round(2)
	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := uc.Orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update mutates status and shipping address only; user, items, and total
// are read-only after creation and any other input is ignored.
func (uc *OrderUC) Update(ctx context.Context, orderID uuid.UUID, status *domain.OrderStatus, shippingAddress *string) (*domain.Order, error) {
	order, err := uc.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if status != nil {
		if !status.Valid() {
			errs := domain.FieldErrors{}
			errs.Add("status", "unknown order status")
			return nil, errs
		}
		if *status == domain.OrderStatusCancelled {
			return uc.cancel(ctx, order)
		}
		if err := order.TransitionTo(*status); err != nil {
			return nil, err
		}
	}
	if shippingAddress != nil {
		if strings.TrimSpace(*shippingAddress) == "" {
			errs := domain.FieldErrors{}
			errs.Add("shipping_address", "shipping address cannot be blank")
			return nil, errs
		}
		order.ShippingAddress = *shippingAddress
	}
	if err := uc.Orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// cancel restocks the captured quantities. Only pending and paid orders can
// be cancelled.
func (uc *OrderUC) cancel(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	switch order.Status {
	case domain.OrderStatusPending, domain.OrderStatusPaid:
	case domain.OrderStatusCancelled:
		return order, nil
	default:
		return nil, domain.ErrInvalidTransition
	}
	for i := range order.Items {
		if err := uc.Products.AdjustStock(ctx, order.Items[i].ProductID, order.Items[i].Quantity); err != nil {
			return nil, err
		}
	}
	order.Status = domain.OrderStatusCancelled
	if err := uc.Orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (uc *OrderUC) Get(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return uc.Orders.FindByID(ctx, orderID)
}

func (uc *OrderUC) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	return uc.Orders.ListByUser(ctx, userID)
}
