package handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/jx"

	"github.com/maisonglass/perfume-api/internal/domain/product"
)

// ListProducts returns the current catalog as {"items": [...]}. An optional
// limit query parameter caps the result; invalid or non-positive values are
// ignored.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	products, err := h.products.List(r.Context(), limit)
	if err != nil {
		respondInternal(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, p := range products {
						encodeProduct(e, p)
					}
				})
			})
		})
	})
}

// encodeProduct writes a single catalog record. Prices render as exact JSON
// numbers via the decimal string form rather than a float round-trip.
func encodeProduct(e *jx.Encoder, p product.Product) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(p.ID) })
		e.Field("name", func(e *jx.Encoder) { e.Str(p.Name) })
		e.Field("price", func(e *jx.Encoder) { e.Num(jx.Num(p.Price.String())) })
		e.Field("rating", func(e *jx.Encoder) { e.Float64(p.Rating) })
		e.Field("reviews", func(e *jx.Encoder) { e.Int(p.Reviews) })
		e.Field("notes", func(e *jx.Encoder) { e.Str(p.Notes) })
		e.Field("image", func(e *jx.Encoder) { e.Str(p.Image) })
		e.Field("description", func(e *jx.Encoder) { e.Str(p.Description) })
		e.Field("topNotes", func(e *jx.Encoder) { encodeStrings(e, p.TopNotes) })
		e.Field("baseNotes", func(e *jx.Encoder) { encodeStrings(e, p.BaseNotes) })
		e.Field("in_stock", func(e *jx.Encoder) { e.Bool(p.InStock) })
	})
}

func encodeStrings(e *jx.Encoder, values []string) {
	e.Arr(func(e *jx.Encoder) {
		for _, v := range values {
			e.Str(v)
		}
	})
}
