package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/signpost"
)

// RequestID adds a uuid to the request context under signpost.RequestIDKey.
//
// A forwarded request keeps the ID already set.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := r.Context().Value(signpost.RequestIDKey).(string); ok && id != "" {
				h.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), signpost.RequestIDKey, uuid.NewString())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
