package handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// Root reports the service banner.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("status", func(e *jx.Encoder) { e.Str("ok") })
			e.Field("service", func(e *jx.Encoder) { e.Str(ServiceName) })
		})
	})
}

// TestDatabase reports storage connectivity and the collections present.
// A storage failure here is reported in the body rather than as an error
// status: the endpoint exists to observe exactly that condition.
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	collections, err := h.diag.Collections(r.Context())
	connected := err == nil
	if collections == nil {
		collections = []string{}
	}

	respond(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("backend", func(e *jx.Encoder) { e.Str("running") })
			e.Field("database", func(e *jx.Encoder) {
				if connected {
					e.Str("connected")
				} else {
					e.Str("unavailable")
				}
			})
			e.Field("collections", func(e *jx.Encoder) { encodeStrings(e, collections) })
		})
	})
}
