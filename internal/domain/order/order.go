package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

// PaymentRefSimulated is the payment reference recorded on orders placed
// through the simulated always-successful payment flow.
const PaymentRefSimulated = "demo-paid"

// Customer holds the buyer details embedded in an order.
type Customer struct {
	Name    string
	Email   string
	Address string
}

// OrderItem represents a single line item in an order. It references the
// product identifier captured at order creation; later catalog changes do not
// affect historical orders.
type OrderItem struct {
	ProductID string `json:"product_id" bson:"product_id"`
	Quantity  int    `json:"qty" bson:"qty"`
}

// Order is the persisted, immutable record of a completed checkout. Subtotal
// is always computed server-side from catalog prices, never taken from the
// client.
type Order struct {
	ID         string
	Items      []OrderItem
	Customer   Customer
	Subtotal   decimal.Decimal
	Status     Status
	PaymentRef string
	CreatedAt  time.Time
}

// Repository defines persistence operations for orders. Create writes the
// order durably and returns the generated identifier.
type Repository interface {
	Create(ctx context.Context, order *Order) (string, error)
}
