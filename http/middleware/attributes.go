package middleware

import (
	"net/http"

	"github.com/xy-planning-network/signpost"
)

// InjectAttributes gives the request a fresh signpost.Attributes,
// which every handler serving it, forwarded ones included, shares.
//
// A request that already carries Attributes keeps them.
func InjectAttributes() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if signpost.ForwardDepthFromContext(r.Context()) > 0 {
				h.ServeHTTP(w, r)
				return
			}

			ctx := signpost.NewAttributesContext(r.Context(), nil)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
