package middleware

import (
	"fmt"
	"net/http"
	"strings"
)

// RequireParams rejects with 400 any request missing one of the named parameters.
// Parameters are looked up in both the query string and a form-encoded body.
//
// If no keys are given, NoopAdapter returns and this middleware does nothing.
func RequireParams(keys ...string) Adapter {
	if len(keys) == 0 {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			var missing []string
			for _, k := range keys {
				if _, ok := r.Form[k]; !ok {
					missing = append(missing, k)
				}
			}

			if len(missing) > 0 {
				msg := fmt.Sprintf("missing required parameters: %s", strings.Join(missing, ", "))
				http.Error(w, msg, http.StatusBadRequest)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
