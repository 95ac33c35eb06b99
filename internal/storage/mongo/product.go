package mongo

import (
	"context"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maisonglass/perfume-api/internal/domain/product"
)

// CollectionProduct is the catalog collection name.
const CollectionProduct = "product"

var _ product.Repository = (*ProductRepository)(nil)

// ProductRepository implements product.Repository on top of the document
// store. Catalog records are read-only from the checkout flow's perspective.
type ProductRepository struct {
	store *Store
}

// NewProductRepository returns a ProductRepository backed by the given store.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// List returns up to limit catalog records; a limit of 0 returns everything.
func (r *ProductRepository) List(ctx context.Context, limit int64) ([]product.Product, error) {
	docs, err := r.store.Documents(ctx, CollectionProduct, nil, limit)
	if err != nil {
		return nil, err
	}

	products := make([]product.Product, len(docs))
	for i, doc := range docs {
		products[i] = mapProduct(doc)
	}
	return products, nil
}

// mapProduct converts a raw catalog document into the domain type. Documents
// are loosely typed, so every field is coerced defensively; absent fields
// yield zero values.
func mapProduct(doc bson.M) product.Product {
	p := product.Product{
		Name:        asString(doc["name"]),
		Price:       asDecimal(doc["price"]),
		Rating:      asFloat(doc["rating"]),
		Reviews:     int(asFloat(doc["reviews"])),
		Notes:       asString(doc["notes"]),
		Image:       asString(doc["image"]),
		Description: asString(doc["description"]),
		TopNotes:    asStrings(doc["topNotes"]),
		BaseNotes:   asStrings(doc["baseNotes"]),
		InStock:     asBool(doc["in_stock"]),
	}
	if id, ok := doc["_id"].(primitive.ObjectID); ok {
		p.ID = id.Hex()
	}
	return p
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// asFloat coerces the numeric types the bson decoder may produce.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

// asDecimal converts a stored price into an exact decimal. Integer-typed
// values convert losslessly; floats go through the shortest-representation
// conversion, which round-trips every value a JSON document can carry.
func asDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	case int:
		return decimal.NewFromInt(int64(n))
	}
	return decimal.Zero
}

func asStrings(v any) []string {
	arr, ok := v.(primitive.A)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
