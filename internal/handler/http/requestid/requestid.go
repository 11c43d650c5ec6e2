// Package requestid tags every HTTP request with a correlation id so the
// access log and handler logs of one call can be lined up afterwards.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header carries the correlation id between client and server.
const Header = "X-Request-ID"

type ctxKey struct{}

// FromContext returns the request's correlation id, or "" outside a request.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithRequestID stores a correlation id on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Middleware adopts the caller-supplied id or issues a fresh UUID, stores it
// on the request context, and echoes it back in the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
