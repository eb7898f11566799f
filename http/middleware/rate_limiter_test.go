package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/middleware"
)

func TestVisitorFetch(t *testing.T) {
	t.Run("Serial", func(t *testing.T) {
		// Arrange
		vs := middleware.NewVisitors()

		// Act
		v1 := vs.Fetch("127.0.0.1")
		time.Sleep(1 * time.Millisecond)
		v2 := vs.Fetch("127.0.0.1")

		// Assert
		require.Equal(t, v1.Limiter, v2.Limiter)
		require.True(t, v1.LastSeen.Before(v2.LastSeen))

	})

	t.Run("Concurrent", func(t *testing.T) {
		// Arrange
		var wg sync.WaitGroup
		vs := middleware.NewVisitors()
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Act
				require.NotPanics(t, func() { vs.Fetch("127.0.0.1") })
			}()
		}

		wg.Wait()
	})
}

func TestRateLimit(t *testing.T) {
	// Arrange
	h := middleware.RateLimit(middleware.NewVisitors())(noopHandler())
	codes := make(map[int]int)

	// Act
	for i := 0; i < 25; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		r.Header.Set("X-Forwarded-For", "1.1.1.1")
		h.ServeHTTP(w, r)
		codes[w.Code]++
	}

	// Assert
	require.GreaterOrEqual(t, codes[http.StatusOK], 20)
	require.NotZero(t, codes[http.StatusTooManyRequests])
}

func TestRateLimitSkipsForwards(t *testing.T) {
	// Arrange
	h := middleware.RateLimit(middleware.NewVisitors())(noopHandler())
	codes := make(map[int]int)

	// Act
	for i := 0; i < 25; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		r.Header.Set("X-Forwarded-For", "1.1.1.1")
		r = r.WithContext(context.WithValue(r.Context(), signpost.ForwardDepthKey, 1))
		h.ServeHTTP(w, r)
		codes[w.Code]++
	}

	// Assert
	require.Equal(t, 25, codes[http.StatusOK])
}
