package resp

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/xy-planning-network/signpost/logger"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w      http.ResponseWriter
	r      *http.Request
	body   []byte
	code   int
	data   any
	header http.Header
	tmpls  []string
	url    *url.URL
}

// Bytes sets the body written verbatim.
//
// Used with Responder.Raw.
func Bytes(b []byte) Fn {
	return func(_ Responder, r *Response) error {
		r.body = b
		return nil
	}
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client.
//
// Used with Responder.Html, Responder.Json, Responder.Xml and Responder.Negotiate.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), &logger.LogContext{Error: e, Request: r.r})
		}

		return Code(http.StatusInternalServerError)(d, r)
	}
}

// Header adds the key-value pair to the response headers.
//
// Used with Responder.Raw.
func Header(key, val string) Fn {
	return func(_ Responder, r *Response) error {
		if key == "" {
			return fmt.Errorf("%w: empty header key", ErrInvalid)
		}

		r.header.Add(key, val)
		return nil
	}
}

// Param adds they query parameter to the response's URL.
//
// Used with Responder.Redirect.
func Param(key, val string) Fn {
	return func(_ Responder, r *Response) error {
		if r.url == nil {
			return fmt.Errorf("%w: Url() has not been called", ErrMissingData)
		}

		q := r.url.Query()
		q.Add(key, val)
		r.url.RawQuery = q.Encode()
		return nil
	}
}

// Tmpls appends to the templates to be rendered.
//
// Used with Responder.Html.
func Tmpls(fps ...string) Fn {
	return func(_ Responder, r *Response) error {
		r.tmpls = append(r.tmpls, fps...)
		return nil
	}
}

// ToRoot calls URL with the Responder's default, root URL.
func ToRoot() Fn {
	return func(d Responder, r *Response) error {
		if d.rootUrl == nil {
			r.url = nil
			return nil
		}

		u := *d.rootUrl
		r.url = &u
		return nil
	}
}

// Url parses raw the URL string and sets it in the *Response if successful.
// Both absolute URLs and absolute paths are accepted.
//
// Used with Responder.Redirect.
func Url(u string) Fn {
	return func(_ Responder, r *Response) error {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return fmt.Errorf("%w: u is not a valid URL: %v", ErrInvalid, err)
		}
		r.url = parsed
		return nil
	}
}

// View maps the logical view name to a template path through the Responder's ViewNamer
// and makes it the root template rendered.
//
// Used with Responder.Html.
func View(name string) Fn {
	return func(d Responder, r *Response) error {
		if strings.Trim(name, "/") == "" {
			return fmt.Errorf("%w: empty view name", ErrInvalid)
		}

		r.tmpls = append([]string{d.namer.ViewPath(name)}, r.tmpls...)
		return nil
	}
}
