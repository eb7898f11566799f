package router

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/middleware"
)

// MaxForwardDepth is how many times a single request may be forwarded
// before Forward refuses, breaking forward cycles.
const MaxForwardDepth = 8

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// Params names the query or form parameters a request must carry;
// requests missing any are rejected with 400.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Params      []string
	Middlewares []middleware.Adapter
}

// A RouteInfo describes a registered route.
type RouteInfo struct {
	Method string
	Path   string
}

func (ri RouteInfo) String() string { return ri.Method + " " + ri.Path }

// Router routes requests for resources to their handlers.
type Router struct {
	Env           signpost.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	r             *mux.Router

	// root is the top-most *mux.Router every forward is served through
	root *mux.Router
}

// New constructs a [*Router] for the given environment.
func New(env signpost.Environment, logReq middleware.Adapter) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	r := mux.NewRouter()
	return &Router{logReq: logReq, Env: env, r: r, root: r}
}

// Forward serves req again as if it had been made to target,
// writing the response to w.
// The forwarded request keeps the method, body, headers and context of req;
// only its URL path, and query when target carries one, change.
//
// If target is empty or not a path, Forward returns signpost.ErrBadConfig.
// If req has been forwarded MaxForwardDepth times already, Forward returns signpost.ErrBadConfig.
func (r *Router) Forward(w http.ResponseWriter, req *http.Request, target string) error {
	if target == "" {
		return fmt.Errorf("%w: empty forward target", signpost.ErrBadConfig)
	}

	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || !strings.HasPrefix(u.Path, "/") {
		return fmt.Errorf("%w: forward target %q is not a path", signpost.ErrBadConfig, target)
	}

	ctx := req.Context()
	depth := signpost.ForwardDepthFromContext(ctx) + 1
	if depth > MaxForwardDepth {
		return fmt.Errorf("%w: forwarded %d times, last to %q", signpost.ErrBadConfig, depth-1, target)
	}

	if _, ok := ctx.Value(signpost.OriginalPathKey).(string); !ok {
		ctx = context.WithValue(ctx, signpost.OriginalPathKey, req.URL.Path)
	}
	ctx = context.WithValue(ctx, signpost.ForwardDepthKey, depth)

	fwd := req.Clone(ctx)
	fwd.URL.Path = path.Clean(u.Path)
	fwd.URL.RawPath = ""
	if u.RawQuery != "" {
		fwd.URL.RawQuery = u.RawQuery
		fwd.Form = nil
	}

	r.root.ServeHTTP(w, fwd)
	return nil
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.Env)(handler),
		append(r.everyReqStack, r.logReq)...,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
// A Route's required Params are checked last, just before its Handler.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append([]middleware.Adapter{}, r.everyReqStack...)
		mws = append(mws, r.logReq)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)
		mws = append(mws, middleware.RequireParams(route.Params...))

		handler := middleware.Chain(middleware.ReportPanic(r.Env)(route.Handler), mws...)
		r.r.Handle(route.Path, handler).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// Routes lists the method and path template of every registered route, sorted by path.
func (r *Router) Routes() []RouteInfo {
	var infos []RouteInfo
	_ = r.root.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		if route.GetHandler() == nil {
			return nil
		}

		tmpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}

		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"ANY"}
		}

		for _, m := range methods {
			infos = append(infos, RouteInfo{Method: m, Path: tmpl})
		}

		return nil
	})

	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].Path != infos[j].Path {
			return infos[i].Path < infos[j].Path
		}

		return infos[i].Method < infos[j].Method
	})

	return infos
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Static serves files from fsys for requests to endpoints matching the prefix,
// asking clients to cache them.
//
// e.g., r.Static("/assets/", assets) serves assets/app.css at /assets/app.css
func (r *Router) Static(prefix string, fsys fs.FS) {
	r.r.PathPrefix(prefix).Handler(middleware.Chain(
		http.StripPrefix(prefix, http.FileServer(http.FS(fsys))),
		cacheControlMiddleware(),
		r.logReq,
	))
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/controller") handles requests to endpoints like /controller/void
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		logReq:        r.logReq,
		everyReqStack: append([]middleware.Adapter{}, r.everyReqStack...),
		root:          r.root,
	}
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
			handler.ServeHTTP(w, r)
		})
	}
}
