package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/maisonglass/perfume-api/internal/domain/order"
)

// CollectionOrder is the orders collection name.
const CollectionOrder = "order"

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository on top of the document store.
type OrderRepository struct {
	store *Store
}

// NewOrderRepository returns an OrderRepository backed by the given store.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Create persists a new order as a single document write and returns the
// generated identifier. Orders are immutable once written; no update or
// delete operation exists.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (string, error) {
	doc := bson.M{
		"items": o.Items,
		"customer": bson.M{
			"name":    o.Customer.Name,
			"email":   o.Customer.Email,
			"address": o.Customer.Address,
		},
		"subtotal":    o.Subtotal.InexactFloat64(),
		"status":      string(o.Status),
		"payment_ref": o.PaymentRef,
		"created_at":  o.CreatedAt,
	}

	return r.store.CreateDocument(ctx, CollectionOrder, doc)
}
