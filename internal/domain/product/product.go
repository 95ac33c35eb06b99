package product

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item available for purchase. Name doubles as
// the lookup key used by checkout; the remaining descriptive attributes are
// irrelevant to pricing.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Rating      float64
	Reviews     int
	Notes       string
	Image       string
	Description string
	TopNotes    []string
	BaseNotes   []string
	InStock     bool
}

// Repository defines read operations for the product catalog.
// A limit of 0 means no limit.
type Repository interface {
	List(ctx context.Context, limit int64) ([]Product, error)
}
