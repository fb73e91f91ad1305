package middleware

import (
	"context"
	"crypto/rand"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/oklog/ulid/v2"
)

// RequestID assigns a ULID to every request that arrives without an
// X-Request-Id header. ULIDs sort by creation time, which keeps log lines
// for concurrent requests greppable in order.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = ulid.MustNew(ulid.Now(), rand.Reader).String()
		}
		ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, reqID)
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
