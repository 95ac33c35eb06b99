package product

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
)

// NotFoundError indicates a requested product name has no catalog record.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.Name)
}

// Lookup resolves display names requested by a cart against the current
// catalog. Checkout items reference products by display name rather than by a
// stable identifier; this is the existing contract, but it is fragile under
// renames and duplicate names, and a production redesign would key items by ID.
type Lookup struct {
	catalog Repository
}

// NewLookup creates a Lookup backed by the given catalog repository.
func NewLookup(catalog Repository) *Lookup {
	return &Lookup{catalog: catalog}
}

// ResolveNames fetches the full current catalog, indexes it by name, and
// returns the authoritative record for every requested name. It returns a
// NotFoundError identifying the first unmatched name; partial resolution is
// never returned.
func (l *Lookup) ResolveNames(ctx context.Context, names []string) (map[string]Product, error) {
	catalog, err := l.catalog.List(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "list catalog")
	}

	index := NewIndex(catalog)

	resolved := make(map[string]Product, len(names))
	for _, name := range names {
		p, ok := index[name]
		if !ok {
			return nil, &NotFoundError{Name: name}
		}
		resolved[name] = p
	}
	return resolved, nil
}

// NewIndex builds a name-keyed index over catalog records. When duplicate
// names exist in storage, the last record wins.
func NewIndex(catalog []Product) map[string]Product {
	index := make(map[string]Product, len(catalog))
	for _, p := range catalog {
		index[p.Name] = p
	}
	return index
}
