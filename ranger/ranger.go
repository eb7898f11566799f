package ranger

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/signpost/http/dispatch"
	"github.com/xy-planning-network/signpost/http/resp"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/logger"
)

// ShutdownTimeout bounds how long Shutdown waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// A Ranger manages and exposes all components of a signpost app to one another.
type Ranger struct {
	*dispatch.Dispatcher
	*resp.Responder
	*router.Router
	Logger logger.Logger

	cfg    Config
	hasCfg bool
	ctx    context.Context
	srv    *http.Server
	views  fs.FS
}

// New constructs a Ranger from the provided options.
// Without WithConfig, New reads its Config with LoadConfig.
// Options supplied to New overwrite default configurations.
func New(opts ...RangerOption) (*Ranger, error) {
	rng := new(Ranger)
	followups := make([]OptFollowup, 0)

	// NOTE: calling an option configures the *Ranger under construction.
	// Some options require components New builds after every option has run.
	// They return an OptFollowup to be called once those components exist.
	for _, opt := range opts {
		fn, err := opt(rng)
		if err != nil {
			return nil, err
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if !rng.hasCfg {
		cfg, err := LoadConfig()
		if err != nil {
			return nil, err
		}

		rng.cfg = cfg
	}

	if rng.Logger == nil {
		rng.Logger = defaultLogger(rng.cfg)
	}

	if rng.ctx == nil {
		rng.ctx = context.Background()
	}

	p := defaultParser(rng.cfg.Environment(), rng.views)
	rng.Responder = defaultResponder(rng.cfg, rng.Logger, p)
	rng.Router = defaultRouter(rng.cfg, rng.Logger, rng.Responder)
	rng.Dispatcher = dispatch.New(rng.Responder, rng.Router, dispatch.WithLogger(rng.Logger))
	rng.srv = defaultServer(rng.ctx, rng.cfg.Server, rng.Router)

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, err
		}
	}

	return rng, nil
}

// Config returns the Config the Ranger was built with.
func (rng *Ranger) Config() Config { return rng.cfg }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - cancelling the context.Context passed to WithContext
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (rng *Ranger) Guide() error {
	ctx, stop := signal.NotifyContext(
		rng.ctx,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		rng.Logger.Info(fmt.Sprintf("running web server at %s", rng.srv.Addr), nil)
		if err := rng.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		rng.Logger.Error(err.Error(), &logger.LogContext{Error: err})
		return err
	case <-ctx.Done():
		rng.Logger.Info(fmt.Sprint("received shutdown signal: ", context.Cause(ctx)), nil)
	}

	return rng.Shutdown()
}

// Shutdown shutdowns the web server.
func (rng *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	rng.Logger.Info("shutting down web server", nil)
	err := rng.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	rng.Logger.Info("web server shutdown successfully", nil)
	return nil
}
