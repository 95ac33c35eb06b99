// Package handler implements the HTTP surface: product listing, checkout,
// and the root/diagnostic endpoints. Request bodies are decoded into typed
// structs and schema-validated before anything reaches the checkout service.
package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/maisonglass/perfume-api/internal/domain/order"
	"github.com/maisonglass/perfume-api/internal/domain/product"
)

// ServiceName is reported by the root endpoint.
const ServiceName = "perfume-commerce"

// Diagnostics exposes the storage introspection used by the /test endpoint.
type Diagnostics interface {
	Collections(ctx context.Context) ([]string, error)
}

// Handler serves the API endpoints, delegating business logic to the checkout
// service and product repository.
type Handler struct {
	products product.Repository
	checkout *order.Service
	diag     Diagnostics
	validate *validator.Validate
}

// NewHandler constructs a Handler with the required dependencies.
func NewHandler(products product.Repository, checkout *order.Service, diag Diagnostics) *Handler {
	return &Handler{
		products: products,
		checkout: checkout,
		diag:     diag,
		validate: validator.New(),
	}
}

// Register attaches all routes to the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /products", h.ListProducts)
	mux.HandleFunc("POST /checkout", h.Checkout)
	mux.HandleFunc("GET /test", h.TestDatabase)
}
