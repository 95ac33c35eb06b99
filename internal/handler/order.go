package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"

	"github.com/maisonglass/perfume-api/internal/domain/order"
	"github.com/maisonglass/perfume-api/internal/domain/product"
)

// checkoutRequest is the typed shape of the checkout body. Any price or
// subtotal fields a client may send are simply not part of this shape and are
// discarded on decode; the subtotal is always computed server-side.
type checkoutRequest struct {
	Items    []checkoutItem  `json:"items" validate:"dive"`
	Customer customerPayload `json:"customer" validate:"required"`
}

type checkoutItem struct {
	Name string `json:"name" validate:"required"`
	Qty  *int   `json:"qty" validate:"omitempty,min=1"`
}

type customerPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address"`
}

// Checkout validates the cart request, drives the checkout service, and maps
// domain errors to client-facing responses.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Empty carts are rejected before validation so the wire message stays
	// exact, and before any catalog or storage access occurs.
	if len(req.Items) == 0 {
		respondDetail(w, r, http.StatusBadRequest, "Cart is empty")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondDetail(w, r, http.StatusBadRequest, validationDetail(err))
		return
	}

	items := make([]order.CartItem, len(req.Items))
	for i, item := range req.Items {
		qty := 1
		if item.Qty != nil {
			qty = *item.Qty
		}
		items[i] = order.CartItem{Name: item.Name, Quantity: qty}
	}

	result, err := h.checkout.Checkout(r.Context(), order.CheckoutRequest{
		Items: items,
		Customer: order.Customer{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Address: req.Customer.Address,
		},
	})
	if err != nil {
		h.respondCheckoutError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("status", func(e *jx.Encoder) { e.Str("success") })
			e.Field("order_id", func(e *jx.Encoder) { e.Str(result.OrderID) })
			e.Field("subtotal", func(e *jx.Encoder) { e.Num(jx.Num(result.Subtotal.StringFixed(2))) })
		})
	})
}

// respondCheckoutError maps checkout failures onto the error taxonomy:
// validation and lookup errors are expected and client-facing, everything
// else is a generic server failure.
func (h *Handler) respondCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		respondDetail(w, r, http.StatusBadRequest, "Cart is empty")
	case errors.Is(err, order.ErrMissingName):
		respondDetail(w, r, http.StatusBadRequest, "Item name is required")
	default:
		var nfErr *product.NotFoundError
		if errors.As(err, &nfErr) {
			respondDetail(w, r, http.StatusBadRequest, fmt.Sprintf("Product not found: %s", nfErr.Name))
			return
		}
		var iqErr *order.InvalidQuantityError
		if errors.As(err, &iqErr) {
			respondDetail(w, r, http.StatusBadRequest, iqErr.Error())
			return
		}
		respondInternal(w, r, err)
	}
}

// validationDetail flattens the first field violation into a short message.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid field %s: failed %s validation", fe.Namespace(), fe.Tag())
	}
	return "Invalid request body"
}
