package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost/http/middleware"
)

func TestRequireParams(t *testing.T) {
	// Arrange + Act
	actual := middleware.RequireParams()

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	for _, tc := range []struct {
		name     string
		method   string
		target   string
		body     string
		expected int
		contains string
	}{
		{"Both-Missing", http.MethodGet, "/", "", http.StatusBadRequest, "name, age"},
		{"One-Missing", http.MethodGet, "/?name=Yoseph", "", http.StatusBadRequest, "age"},
		{"Empty-Values-Present", http.MethodGet, "/?name=&age=", "", http.StatusOK, ""},
		{"Query", http.MethodGet, "/?name=Yoseph&age=23", "", http.StatusOK, ""},
		{"Form", http.MethodPost, "/?name=Yoseph", "age=23", http.StatusOK, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			if tc.body != "" {
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}

			// Act
			middleware.RequireParams("name", "age")(noopHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.expected, w.Code)
			require.Contains(t, w.Body.String(), tc.contains)
		})
	}
}
