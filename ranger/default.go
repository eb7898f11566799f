package ranger

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/http"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/middleware"
	"github.com/xy-planning-network/signpost/http/resp"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/http/template"
	"github.com/xy-planning-network/signpost/logger"
)

const (
	// AssetsPath is where WithStatic serves files from.
	AssetsPath = "/assets/"

	contactUsErr = "Something went wrong. Please try again or contact us at %s."
)

// defaultLogger constructs the logger.Logger used throughout the application.
// If SENTRY_DSN is set, errors are reported to Sentry as well.
func defaultLogger(cfg Config) logger.Logger {
	l := logger.New(
		logger.WithEnv(cfg.Environment().String()),
		logger.WithLevel(cfg.Level()),
	)
	l.Debug("setting up app logger", nil)

	return l
}

// defaultParser constructs a *template.Parse to be used
// when responding to HTTP requests with [*resp.Responder.Html].
//
// defaultParser makes available these functions in an HTML template:
//
//   - "env"
//   - "isDevelopment"
//   - "isStaging"
//   - "isProduction"
//
// The Responder adds "nonce" and "rootURL".
func defaultParser(env signpost.Environment, views fs.FS) *template.Parse {
	var opts []template.ParserOptFn
	if views != nil {
		opts = append(opts, template.WithFS(views))
	}

	p := template.NewParser(opts...)
	p.AddFn(template.Env(env))
	p.AddFn("isDevelopment", env.IsDevelopment)
	p.AddFn("isStaging", env.IsStaging)
	p.AddFn("isProduction", env.IsProduction)

	return p
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder(cfg Config, l logger.Logger, p template.Parser) *resp.Responder {
	args := []resp.ResponderOptFn{
		resp.WithContactErrMsg(fmt.Sprintf(contactUsErr, cfg.ContactUs)),
		resp.WithErrTemplate(template.ErrTmpl),
		resp.WithLogger(l),
		resp.WithParser(p),
		resp.WithRootUrl(cfg.BaseURL),
		resp.WithViewNamer(resp.PrefixSuffix{Prefix: cfg.Views.Prefix, Suffix: cfg.Views.Suffix}),
		resp.WithViewNotFoundCode(cfg.Views.NotFoundCode),
	}

	return resp.NewResponder(args...)
}

// defaultMiddlewares lists the middlewares every request passes through, in order.
func defaultMiddlewares(cfg Config) []middleware.Adapter {
	env := cfg.Environment()
	return []middleware.Adapter{
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.CORS(cfg.CORSOrigin),
		middleware.InjectAttributes(),
	}
}

// defaultRouter constructs a [*router.Router] to be used by the web server.
//
// Requests matching no route are answered with 404.
func defaultRouter(cfg Config, l logger.Logger, responder *resp.Responder) *router.Router {
	r := router.New(cfg.Environment(), middleware.LogRequest(l))
	r.OnEveryRequest(defaultMiddlewares(cfg)...)
	r.HandleNotFound(func(w http.ResponseWriter, req *http.Request) {
		responder.Raw(
			w,
			req,
			resp.Code(http.StatusNotFound),
			resp.Header("Content-Type", "text/plain; charset=utf-8"),
			resp.Bytes([]byte(fmt.Sprintf("nothing found at %s\n", req.URL.Path))),
		)
	})

	return r
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context, cfg ServerConfig, handler http.Handler) *http.Server {
	port := cfg.Port
	if port == "" {
		port = ":3000"
	}

	if port[0] != ':' {
		if _, _, err := net.SplitHostPort(port); err != nil {
			port = ":" + port
		}
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      handler,
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
