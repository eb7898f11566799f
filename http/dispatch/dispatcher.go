package dispatch

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/resp"
	"github.com/xy-planning-network/signpost/logger"
)

const dispatcherFrames = 0

// A Responder writes each kind of response a Dispatcher chooses.
//
// *resp.Responder implements Responder.
type Responder interface {
	Err(w http.ResponseWriter, r *http.Request, err error, opts ...resp.Fn)
	Html(w http.ResponseWriter, r *http.Request, opts ...resp.Fn) error
	Negotiate(w http.ResponseWriter, r *http.Request, opts ...resp.Fn) error
	Raw(w http.ResponseWriter, r *http.Request, opts ...resp.Fn) error
	Redirect(w http.ResponseWriter, r *http.Request, opts ...resp.Fn) error
}

// A Forwarder serves a request again at another path on the same server.
//
// *router.Router implements Forwarder.
type Forwarder interface {
	Forward(w http.ResponseWriter, r *http.Request, target string) error
}

// A Handler handles an HTTP request, returning the Result describing the response.
//
// A Handler returning an error wrapping signpost.ErrNotValid or signpost.ErrBadFormat
// is answered with 400; any other error with 500.
type Handler func(*http.Request) (Result, error)

// A Dispatcher carries out the Resolution Plan chooses for each Result.
type Dispatcher struct {
	forwarder Forwarder
	logger    logger.Logger
	responder Responder
}

// New constructs a *Dispatcher writing responses through rs and forwarding through fwd.
func New(rs Responder, fwd Forwarder, opts ...DispatcherOptFn) *Dispatcher {
	d := &Dispatcher{forwarder: fwd, responder: rs}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(dispatcherFrames)
	}

	return d
}

// Controller returns a *Controller whose relative redirect and forward targets resolve against base.
//
// e.g., d.Controller("/controller/") resolves "redirect:redirect" to /controller/redirect
func (d *Dispatcher) Controller(base string) *Controller {
	return &Controller{base: base, d: d}
}

// Dispatch plans and writes the response for res.
// Dispatch always writes a response; the error returned reports what went wrong doing so.
func (d *Dispatcher) Dispatch(w http.ResponseWriter, r *http.Request, base string, res Result) error {
	plan, err := Plan(r, base, res)
	if err != nil {
		d.responder.Err(w, r, err)
		return err
	}

	d.logger.Debug(
		fmt.Sprintf("%s %s resolved to %s", r.Method, r.URL.Path, plan.Strategy),
		&logger.LogContext{Data: map[string]any{"view": plan.View, "target": plan.Target}},
	)

	switch plan.Strategy {
	case StrategyView:
		return d.responder.Html(w, r, resp.View(plan.View))

	case StrategyRedirect:
		if plan.External {
			d.logger.Warn(
				fmt.Sprintf("redirecting to fully qualified URL %s, prefer a path", plan.Target),
				&logger.LogContext{Request: r},
			)
		}

		if err := d.responder.Redirect(w, r, resp.Url(plan.Target)); err != nil {
			d.responder.Err(w, r, err)
			return err
		}

	case StrategyForward:
		if err := d.forwarder.Forward(w, r, plan.Target); err != nil {
			d.responder.Err(w, r, err)
			return err
		}

	case StrategyBody:
		return d.responder.Negotiate(w, r, resp.Data(plan.Value), resp.Code(plan.Code))

	case StrategyEnvelope:
		fns := []resp.Fn{resp.Code(plan.Code), resp.Bytes(plan.Bytes)}
		for k, vals := range plan.Header {
			for _, v := range vals {
				fns = append(fns, resp.Header(k, v))
			}
		}

		if err := d.responder.Raw(w, r, fns...); err != nil {
			d.responder.Err(w, r, err)
			return err
		}
	}

	return nil
}

// A Controller adapts Handlers sharing a base path into http.HandlerFuncs.
type Controller struct {
	base string
	d    *Dispatcher
}

// Base returns the path relative targets resolve against.
func (c *Controller) Base() string { return c.base }

// Handle adapts h into an http.HandlerFunc dispatching whatever h returns.
func (c *Controller) Handle(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h(r)
		if err != nil {
			c.d.responder.Err(w, r, err, resp.Code(statusFor(err)))
			return
		}

		// Dispatch has already responded when it errs.
		_ = c.d.Dispatch(w, r, c.base, res)
	}
}

func statusFor(err error) int {
	if errors.Is(err, signpost.ErrNotValid) || errors.Is(err, signpost.ErrBadFormat) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
