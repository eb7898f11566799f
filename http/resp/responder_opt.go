package resp

import (
	"net/url"

	"github.com/xy-planning-network/signpost/http/template"
	"github.com/xy-planning-network/signpost/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithContactErrMsg sets the message shown alongside errors rendered by the error template.
func WithContactErrMsg(msg string) func(*Responder) {
	return func(d *Responder) {
		d.contactErrMsg = msg
	}
}

// WithErrTemplate sets the template identified by the filepath to use for rendering
// when an unexpected, unhandled error occurs while rendering HTML.
//
// By default, the error template embedded in the template package is used.
func WithErrTemplate(fp string) func(*Responder) {
	return func(d *Responder) {
		d.templates.err = fp
	}
}

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a defaultLogger will be configured.
func WithLogger(log logger.Logger) func(*Responder) {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithParser sets the provided implementation of template.Parser to use for parsing HTML templates.
func WithParser(p template.Parser) func(*Responder) {
	return func(d *Responder) {
		d.parser = p
	}
}

// WithRootUrl sets the provided URL after parsing it into a *url.URL to use for rendering and redirecting
//
// NOTE: If u fails parsing by url.ParseRequestURI, the root URL becomes https://example.com
func WithRootUrl(u string) func(*Responder) {
	good, err := url.ParseRequestURI(u)
	if err != nil {
		good, _ = url.ParseRequestURI("https://example.com")
	}

	return func(d *Responder) {
		d.rootUrl = good
	}
}

// WithViewNamer sets the ViewNamer mapping logical view names to template paths.
//
// A nil ViewNamer leaves DefaultViewNamer in place.
func WithViewNamer(vn ViewNamer) func(*Responder) {
	return func(d *Responder) {
		if vn != nil {
			d.namer = vn
		}
	}
}

// WithViewNotFoundCode sets the status code Html responds with
// when a logical view name maps to no template.
//
// Codes outside 400-599 are ignored.
func WithViewNotFoundCode(code int) func(*Responder) {
	return func(d *Responder) {
		if code >= 400 && code < 600 {
			d.viewNotFoundCode = code
		}
	}
}
