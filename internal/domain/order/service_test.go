package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisonglass/perfume-api/internal/domain/product"
)

// --- Mock implementations ---

type mockProductRepo struct {
	products  []product.Product
	listErr   error
	listCalls int
}

func (m *mockProductRepo) List(_ context.Context, _ int64) ([]product.Product, error) {
	m.listCalls++
	return m.products, m.listErr
}

type mockOrderRepo struct {
	orders []*Order
	err    error
}

func (m *mockOrderRepo) Create(_ context.Context, o *Order) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.orders = append(m.orders, o)
	return fmt.Sprintf("order-%d", len(m.orders)), nil
}

// --- Helpers ---

func newTestProduct(id, name, price string) product.Product {
	return product.Product{
		ID:      id,
		Name:    name,
		Price:   decimal.RequireFromString(price),
		InStock: true,
	}
}

func newService(orders *mockOrderRepo, products ...product.Product) *Service {
	lookup := product.NewLookup(&mockProductRepo{products: products})
	return NewService(lookup, orders)
}

var testCustomer = Customer{
	Name:  "Ada",
	Email: "ada@example.com",
}

// --- Tests ---

func TestCheckout_EmptyCart(t *testing.T) {
	products := &mockProductRepo{}
	orders := &mockOrderRepo{}
	svc := NewService(product.NewLookup(products), orders)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{Customer: testCustomer})
	require.ErrorIs(t, err, ErrEmptyCart)

	// Rejected before any catalog read or storage write.
	assert.Zero(t, products.listCalls)
	assert.Empty(t, orders.orders)
}

func TestCheckout_MissingName(t *testing.T) {
	svc := newService(&mockOrderRepo{}, newTestProduct("p1", "Glass No. 1", "128"))

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:    []CartItem{{Name: "", Quantity: 1}},
		Customer: testCustomer,
	})
	require.ErrorIs(t, err, ErrMissingName)
}

func TestCheckout_InvalidQuantity(t *testing.T) {
	svc := newService(&mockOrderRepo{}, newTestProduct("p1", "Glass No. 1", "128"))

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:    []CartItem{{Name: "Glass No. 1", Quantity: 0}},
		Customer: testCustomer,
	})

	var iqErr *InvalidQuantityError
	require.ErrorAs(t, err, &iqErr)
	assert.Equal(t, "Glass No. 1", iqErr.Name)
}

func TestCheckout_ProductNotFound(t *testing.T) {
	orders := &mockOrderRepo{}
	svc := newService(orders, newTestProduct("p1", "Glass No. 1", "128"))

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:    []CartItem{{Name: "Unknown Scent", Quantity: 1}},
		Customer: testCustomer,
	})

	var nfErr *product.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Unknown Scent", nfErr.Name)
	// Lookup failure aborts the whole checkout; nothing is persisted.
	assert.Empty(t, orders.orders)
}

func TestCheckout_SubtotalFromCatalogPrices(t *testing.T) {
	orders := &mockOrderRepo{}
	svc := newService(orders,
		newTestProduct("p1", "Glass No. 1", "128"),
		newTestProduct("p2", "Glass No. 2", "142"),
	)

	result, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items: []CartItem{
			{Name: "Glass No. 1", Quantity: 2},
			{Name: "Glass No. 2", Quantity: 1},
		},
		Customer: testCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, "398.00", result.Subtotal.StringFixed(2))

	require.Len(t, orders.orders, 1)
	o := orders.orders[0]
	assert.Equal(t, StatusPaid, o.Status)
	assert.Equal(t, PaymentRefSimulated, o.PaymentRef)
	assert.Equal(t, testCustomer, o.Customer)
	assert.Equal(t, []OrderItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}, o.Items)
	assert.False(t, o.CreatedAt.IsZero())
}

func TestCheckout_GlassNo1Twice(t *testing.T) {
	svc := newService(&mockOrderRepo{}, newTestProduct("p1", "Glass No. 1", "128"))

	result, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:    []CartItem{{Name: "Glass No. 1", Quantity: 2}},
		Customer: testCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, "256.00", result.Subtotal.StringFixed(2))
}

func TestCheckout_DistinctOrderIDs(t *testing.T) {
	svc := newService(&mockOrderRepo{}, newTestProduct("p1", "Glass No. 1", "128"))
	req := CheckoutRequest{
		Items:    []CartItem{{Name: "Glass No. 1", Quantity: 1}},
		Customer: testCustomer,
	}

	first, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderID, second.OrderID)
}

func TestCheckout_CreatedAtFromClock(t *testing.T) {
	orders := &mockOrderRepo{}
	svc := newService(orders, newTestProduct("p1", "Glass No. 1", "128"))
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:    []CartItem{{Name: "Glass No. 1", Quantity: 1}},
		Customer: testCustomer,
	})

	require.NoError(t, err)
	require.Len(t, orders.orders, 1)
	assert.Equal(t, now, orders.orders[0].CreatedAt)
}

func TestCheckout_OrderCreateError(t *testing.T) {
	svc := newService(
		&mockOrderRepo{err: errors.New("db write failed")},
		newTestProduct("p1", "Glass No. 1", "128"),
	)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items:    []CartItem{{Name: "Glass No. 1", Quantity: 1}},
		Customer: testCustomer,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create order")
}
