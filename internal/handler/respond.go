package handler

import (
	"net/http"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// respond encodes a JSON body built by fn and writes it with the given status.
func respond(w http.ResponseWriter, r *http.Request, status int, fn func(e *jx.Encoder)) {
	e := &jx.Encoder{}
	fn(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		zctx.From(r.Context()).Debug("Write response", zap.Error(err))
	}
}

// respondDetail writes the {"detail": ...} error body used for all
// client-facing failures.
func respondDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	respond(w, r, status, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("detail", func(e *jx.Encoder) {
				e.Str(detail)
			})
		})
	})
}

// respondInternal logs the unexpected error and writes a generic 500 body.
// Storage failures end up here: fatal to the request, never to the process.
func respondInternal(w http.ResponseWriter, r *http.Request, err error) {
	zctx.From(r.Context()).Error("Request failed", zap.Error(err))
	respondDetail(w, r, http.StatusInternalServerError, "Internal Server Error")
}
