package order

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/maisonglass/perfume-api/internal/domain/product"
)

// Sentinel errors for cart validation.
var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrMissingName = errors.New("item name required")
)

// InvalidQuantityError indicates a cart line has a non-positive quantity.
type InvalidQuantityError struct {
	Name string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be at least 1 for product %s", e.Name)
}

// NameResolver resolves requested display names to authoritative catalog
// records. Implemented by product.Lookup.
type NameResolver interface {
	ResolveNames(ctx context.Context, names []string) (map[string]product.Product, error)
}

// CartItem is a single requested line in a checkout request.
type CartItem struct {
	Name     string
	Quantity int
}

// CheckoutRequest holds the validated input for a checkout. Any price or
// subtotal the client may have sent has already been discarded at the API
// boundary.
type CheckoutRequest struct {
	Items    []CartItem
	Customer Customer
}

// CheckoutResult holds the output of a successful checkout.
type CheckoutResult struct {
	OrderID  string
	Subtotal decimal.Decimal
}

// Service drives the checkout flow: validate the cart, resolve catalog
// prices, compute the subtotal, assemble the order, and persist it.
type Service struct {
	catalog NameResolver
	orders  Repository
	now     func() time.Time
}

// NewService creates a checkout Service with the required dependencies.
func NewService(catalog NameResolver, orders Repository) *Service {
	return &Service{
		catalog: catalog,
		orders:  orders,
		now:     time.Now,
	}
}

// Checkout processes a cart request end to end. Validation and lookup
// failures (ErrEmptyCart, ErrMissingName, InvalidQuantityError,
// product.NotFoundError) abort before any write; no partial order is ever
// persisted. Payment is simulated as unconditionally successful, so the order
// is assembled with status "paid" and a sentinel payment reference.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	names := make([]string, len(req.Items))
	for i, item := range req.Items {
		if item.Name == "" {
			return nil, ErrMissingName
		}
		if item.Quantity < 1 {
			return nil, &InvalidQuantityError{Name: item.Name}
		}
		names[i] = item.Name
	}

	resolved, err := s.catalog.ResolveNames(ctx, names)
	if err != nil {
		return nil, err
	}

	items := make([]OrderItem, len(req.Items))
	lines := make([]Line, len(req.Items))
	for i, item := range req.Items {
		p := resolved[item.Name]
		items[i] = OrderItem{
			ProductID: p.ID,
			Quantity:  item.Quantity,
		}
		lines[i] = Line{
			UnitPrice: p.Price,
			Quantity:  item.Quantity,
		}
	}

	o := &Order{
		Items:      items,
		Customer:   req.Customer,
		Subtotal:   Subtotal(lines),
		Status:     StatusPaid,
		PaymentRef: PaymentRefSimulated,
		CreatedAt:  s.now(),
	}

	id, err := s.orders.Create(ctx, o)
	if err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	o.ID = id

	return &CheckoutResult{
		OrderID:  id,
		Subtotal: o.Subtotal,
	}, nil
}
