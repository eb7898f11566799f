package ranger_test

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/dispatch"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/logger"
	"github.com/xy-planning-network/signpost/ranger"
)

func newTestConfig() ranger.Config {
	return ranger.Config{
		BaseURL: "http://localhost:3000",
		Env:     signpost.Testing.String(),
		Server:  ranger.ServerConfig{Port: "127.0.0.1:0"},
		Views:   ranger.ViewsConfig{Prefix: "views/", Suffix: ".tmpl", NotFoundCode: http.StatusNotFound},
	}
}

func newTestLogger(b *bytes.Buffer) logger.Logger {
	return logger.New(logger.WithLogger(log.New(b, "", 0)), logger.WithLevel(logger.LogLevelDebug))
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Arrange
		t.Setenv(ranger.ConfigPathEnvVar, "")

		// Act
		cfg, err := ranger.LoadConfig()

		// Assert
		require.Nil(t, err)
		require.Equal(t, "http://localhost:3000", cfg.BaseURL)
		require.Equal(t, signpost.Development, cfg.Environment())
		require.Equal(t, logger.LogLevelInfo, cfg.Level())
		require.Equal(t, ":3000", cfg.Server.Port)
		require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
		require.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
		require.Equal(t, ranger.ViewsConfig{Prefix: "views/", Suffix: ".tmpl", NotFoundCode: http.StatusNotFound}, cfg.Views)
	})

	t.Run("Env", func(t *testing.T) {
		// Arrange
		t.Setenv(ranger.ConfigPathEnvVar, "")
		t.Setenv("ENVIRONMENT", "staging")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("VIEW_PREFIX", "pages/")
		t.Setenv("VIEW_NOT_FOUND_CODE", "500")
		t.Setenv("SERVER_WRITE_TIMEOUT", "10s")

		// Act
		cfg, err := ranger.LoadConfig()

		// Assert
		require.Nil(t, err)
		require.Equal(t, signpost.Staging, cfg.Environment())
		require.Equal(t, logger.LogLevelDebug, cfg.Level())
		require.Equal(t, "pages/", cfg.Views.Prefix)
		require.Equal(t, http.StatusInternalServerError, cfg.Views.NotFoundCode)
		require.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	})

	t.Run("File", func(t *testing.T) {
		// Arrange
		fp := filepath.Join(t.TempDir(), "config.yaml")
		contents := "base_url: https://example.com\nviews:\n  prefix: templates/\n  suffix: .html\n"
		require.Nil(t, os.WriteFile(fp, []byte(contents), 0o600))
		t.Setenv(ranger.ConfigPathEnvVar, fp)

		// Act
		cfg, err := ranger.LoadConfig()

		// Assert
		require.Nil(t, err)
		require.Equal(t, "https://example.com", cfg.BaseURL)
		require.Equal(t, "templates/", cfg.Views.Prefix)
		require.Equal(t, ".html", cfg.Views.Suffix)
		require.Equal(t, http.StatusNotFound, cfg.Views.NotFoundCode)
	})

	t.Run("Missing-File", func(t *testing.T) {
		t.Setenv(ranger.ConfigPathEnvVar, filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := ranger.LoadConfig()
		require.ErrorIs(t, err, signpost.ErrBadConfig)
	})

	t.Run("Bad-Code", func(t *testing.T) {
		t.Setenv(ranger.ConfigPathEnvVar, "")
		t.Setenv("VIEW_NOT_FOUND_CODE", "200")
		_, err := ranger.LoadConfig()
		require.ErrorIs(t, err, signpost.ErrBadConfig)
	})
}

func TestConfigValid(t *testing.T) {
	tcs := []struct {
		name   string
		modify func(*ranger.Config)
		err    error
	}{
		{"Valid", func(*ranger.Config) {}, nil},
		{"Lowercase-Env", func(c *ranger.Config) { c.Env = "production" }, nil},
		{"Bad-Env", func(c *ranger.Config) { c.Env = "REVIEW" }, signpost.ErrBadConfig},
		{"Bad-URL", func(c *ranger.Config) { c.BaseURL = "localhost" }, signpost.ErrBadConfig},
		{"Bad-Code", func(c *ranger.Config) { c.Views.NotFoundCode = 302 }, signpost.ErrBadConfig},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := newTestConfig()
			tc.modify(&cfg)
			require.ErrorIs(t, cfg.Valid(), tc.err)
		})
	}
}

func TestUsage(t *testing.T) {
	usage := ranger.Usage()
	require.Contains(t, usage, "BASE_URL")
	require.Contains(t, usage, "VIEW_PREFIX")
}

func TestNew(t *testing.T) {
	t.Run("Bad-Config", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.BaseURL = ""
		_, err := ranger.New(ranger.WithConfig(cfg))
		require.ErrorIs(t, err, signpost.ErrBadConfig)
	})

	t.Run("Wired", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		views := fstest.MapFS{
			"views/greeting.tmpl": {Data: []byte(`hello from {{ env }}`)},
		}
		assets := fstest.MapFS{"app.css": {Data: []byte("body{}")}}

		rng, err := ranger.New(
			ranger.WithConfig(newTestConfig()),
			ranger.WithLogger(newTestLogger(b)),
			ranger.WithViews(views),
			ranger.WithStatic(assets),
		)
		require.Nil(t, err)

		ctrl := rng.Controller("/greetings/")
		rng.Subrouter("/greetings").HandleRoutes([]router.Route{
			{
				Path:    "/hello",
				Method:  http.MethodGet,
				Handler: ctrl.Handle(func(*http.Request) (dispatch.Result, error) { return dispatch.String("greeting"), nil }),
			},
			{
				Path:    "/forward",
				Method:  http.MethodGet,
				Handler: ctrl.Handle(func(*http.Request) (dispatch.Result, error) { return dispatch.Forward("hello"), nil }),
			},
		})

		srv := httptest.NewServer(rng)
		defer srv.Close()

		tcs := []struct {
			name string
			path string
			code int
			body string
		}{
			{"View", "/greetings/hello", http.StatusOK, "hello from TESTING"},
			{"Forward", "/greetings/forward", http.StatusOK, "hello from TESTING"},
			{"Static", "/assets/app.css", http.StatusOK, "body{}"},
			{"Not-Found", "/nowhere", http.StatusNotFound, "nothing found at /nowhere\n"},
		}

		for _, tc := range tcs {
			t.Run(tc.name, func(t *testing.T) {
				// Act
				res, err := http.Get(srv.URL + tc.path)
				require.Nil(t, err)
				defer res.Body.Close()

				body, err := io.ReadAll(res.Body)
				require.Nil(t, err)

				// Assert
				require.Equal(t, tc.code, res.StatusCode)
				require.Equal(t, tc.body, string(body))
			})
		}

		require.Contains(t, b.String(), "GET /greetings/hello 200")
	})
}

func TestRangerGuide(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	ctx, cancel := context.WithCancel(context.Background())

	rng, err := ranger.New(
		ranger.WithConfig(newTestConfig()),
		ranger.WithLogger(newTestLogger(b)),
		ranger.WithContext(ctx),
		ranger.WithServer(&http.Server{Addr: "127.0.0.1:0"}),
	)
	require.Nil(t, err)

	done := make(chan error, 1)

	// Act
	go func() { done <- rng.Guide() }()
	time.AfterFunc(50*time.Millisecond, cancel)

	// Assert
	select {
	case err := <-done:
		require.Nil(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Guide did not return after its context was cancelled")
	}

	require.Contains(t, b.String(), "web server shutdown successfully")
}
