package middleware

import (
	"fmt"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/logger"
)

// LogRequest logs the request's method, requested URL, originating IP address,
// the response status and the time taken to respond
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
// - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			q := r.URL.Query()
			signpost.Mask(q, "password")

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			m := httpsnoop.CaptureMetrics(h, w, r)

			data := map[string]any{
				"method":   r.Method,
				"uri":      uri,
				"status":   m.Code,
				"duration": m.Duration.String(),
				"size":     m.Written,
			}
			if ip, ok := r.Context().Value(signpost.IpAddrKey).(string); ok {
				data["ip"] = ip
			}
			if id, ok := r.Context().Value(signpost.RequestIDKey).(string); ok {
				data["id"] = id
			}

			ls.Info(fmt.Sprintf("%s %s %d", r.Method, uri, m.Code), &logger.LogContext{Data: data})
		})
	}
}
