package ranger

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/xy-planning-network/signpost/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithConfig is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithServer is an example of the second.
// The *http.Server is only handed the *Ranger's router when the closure it returns is called.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithConfig uses cfg instead of the Config LoadConfig reads.
func WithConfig(cfg Config) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if err := cfg.Valid(); err != nil {
			return nil, err
		}

		rng.cfg = cfg
		rng.hasCfg = true

		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the signpost app.
// Cancelling ctx stops Guide.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.ctx = ctx
		return func() error {
			rng.Logger.Debug(fmt.Sprintf("using context %T", ctx), nil)
			return nil
		}, nil
	}
}

// WithLogger exposes the provided logger.Logger to the signpost app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.Logger = l
		l.Debug(fmt.Sprintf("using logger %T", l), nil)

		return nil, nil
	}
}

// WithServer constructs a followup option that, when called,
// serves the *Ranger's router with s.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			s.Handler = rng.Router
			rng.srv = s
			rng.Logger.Debug(fmt.Sprintf("using server listening at %s", s.Addr), nil)

			return nil
		}, nil
	}
}

// WithStatic serves the files in fsys under /assets/.
func WithStatic(fsys fs.FS) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			rng.Router.Static(AssetsPath, fsys)
			return nil
		}, nil
	}
}

// WithViews looks up templates for logical views in fsys instead of the current working directory.
func WithViews(fsys fs.FS) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.views = fsys
		return nil, nil
	}
}
