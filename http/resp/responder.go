package resp

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sync"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/template"
	"github.com/xy-planning-network/signpost/logger"
)

const responderFrames = 0

// Responder maintains reusable pieces for responding to HTTP requests.
// It exposes many common methods for writing structured data as an HTTP response.
// These are the forms of response Responder can execute:
//
//	Html
//	Json
//	Xml
//	Negotiate
//	Redirect
//	Raw
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
// Meaning, one needs only application-wide configuration of how HTTP responses should look.
//
// When handling a specific HTTP request, calling code supplies additional data, structure,
// and so forth through Fn functions. While one can create functions of the same type,
// the Responder and Response structs do not expose much - if anything - to interact with.
type Responder struct {
	logger logger.Logger

	// Initialized template parser
	parser template.Parser

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool

	// Error message to use for "contact us" style client-side error messages
	contactErrMsg string

	// Root URL the responder is listening on, also used when in an error state
	rootUrl *url.URL

	// Maps logical view names to template paths
	namer ViewNamer

	// Status code used when a logical view names no template
	viewNotFoundCode int

	templates struct {
		// Root template to render when an error occurs
		// and no other response can be formed
		err string
	}
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	// ranging over opts may or may not overwrite defaults
	d := &Responder{
		pool:             &sync.Pool{New: func() any { return new(bytes.Buffer) }},
		namer:            DefaultViewNamer,
		viewNotFoundCode: http.StatusNotFound,
	}
	d.templates.err = template.ErrTmpl

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	if d.parser != nil {
		d.parser.AddFn(template.Nonce())
		d.parser.AddFn(template.RootURL(d.rootUrl))
	}

	return d
}

// Err wraps http.Error(), logging the error causing the failure state.
//
// Use in exceptional circumstances when no Redirect or Html can occur.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append([]Fn{Err(err)}, opts...)...)
	if nested != nil {
		err = fmt.Errorf("%w: %s", err, nested)
	}

	var msg string
	if err != nil {
		msg = err.Error()
	}

	code := http.StatusInternalServerError
	if rr != nil && rr.code != 0 {
		code = rr.code
	}

	http.Error(w, msg, code)
}

// Html renders the template a logical view name maps to, set by View,
// composed with any templates added by Tmpls.
//
// The rendered template receives the value set by Data under .Data
// and the request's signpost.Attributes under .Attributes.
//
// If a template cannot be found, Html responds with the status set by WithViewNotFoundCode
// and returns an error wrapping ErrNotFound.
func (doer *Responder) Html(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return doer.handleHtmlError(w, r, http.StatusInternalServerError, err)
	}

	if doer.parser == nil {
		return doer.handleHtmlError(w, r, http.StatusInternalServerError, fmt.Errorf("%w: no parser configured", ErrBadConfig))
	}

	if len(rr.tmpls) == 0 {
		return doer.handleHtmlError(w, r, http.StatusInternalServerError, fmt.Errorf("%w: no templates to render", ErrMissingData))
	}

	tmpl, err := doer.parser.Parse(rr.tmpls...)
	if errors.Is(err, template.ErrNotFound) {
		return doer.handleHtmlError(w, r, doer.viewNotFoundCode, fmt.Errorf("%w: %s", ErrNotFound, err))
	}
	if err != nil {
		return doer.handleHtmlError(w, r, http.StatusInternalServerError, fmt.Errorf("cannot parse: %w", err))
	}

	rd := struct {
		Attributes signpost.Attributes
		Data       any
	}{
		Attributes: signpost.AttributesFromContext(r.Context()),
		Data:       rr.data,
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := tmpl.ExecuteTemplate(b, path.Base(rr.tmpls[0]), rd); err != nil {
		return doer.handleHtmlError(w, r, http.StatusInternalServerError, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if rr.code != 0 {
		w.WriteHeader(rr.code)
	}

	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// Json responds with the value set by Data encoded as JSON.
// The value is the whole body; Json does not wrap it in another object.
//
// The default response status code is 200.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	return doer.encode(w, r, jsonMediaType, opts...)
}

// Xml responds with the value set by Data encoded as XML.
//
// The default response status code is 200.
func (doer *Responder) Xml(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	return doer.encode(w, r, xmlMediaType, opts...)
}

// Negotiate responds with the value set by Data, encoded as JSON or XML
// per the request's Accept header.
// JSON is preferred when the client accepts both or sends no Accept header.
//
// If the client accepts neither, Negotiate responds with 406
// and returns an error wrapping ErrNotAcceptable.
func (doer *Responder) Negotiate(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	w.Header().Add("Vary", "Accept")

	mt := negotiate(r.Header.Get("Accept"))
	if mt == "" {
		err := fmt.Errorf("%w: %q", ErrNotAcceptable, r.Header.Get("Accept"))
		http.Error(w, err.Error(), http.StatusNotAcceptable)
		return err
	}

	return doer.encode(w, r, mt, opts...)
}

// Raw writes the status code set by Code, the headers set by Header,
// and the body set by Bytes exactly as given.
// No Content-Type is inferred when none was set.
//
// The default response status code is 200.
func (doer *Responder) Raw(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	for k, vals := range rr.header {
		w.Header()[k] = append([]string(nil), vals...)
	}

	if _, ok := w.Header()["Content-Type"]; !ok {
		// a nil value suppresses content sniffing
		w.Header()["Content-Type"] = nil
	}

	w.WriteHeader(rr.code)
	if _, err := w.Write(rr.body); err != nil {
		return err
	}

	return nil
}

// Redirect calls http.Redirect, given Url() set the redirect destination.
// If Url() is not passed in opts, then ToRoot() sets the redirect destination.
//
// The default response status code is 302.
//
// If Code() set the status code to something other than standard redirect 3xx statuses,
// Redirect overwrites the status code with an appropriate 3xx status code.
func (doer *Responder) Redirect(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, append([]Fn{ToRoot()}, opts...)...)
	if err != nil {
		return err
	}

	// NOTE: because of the default ToRoot(),
	// this check safeguards against bugs in the above.
	if rr.url == nil {
		return fmt.Errorf("%w: cannot redirect, no resp.url", ErrMissingData)
	}

	switch {
	case rr.code >= http.StatusMultipleChoices && rr.code <= http.StatusPermanentRedirect:
		// code is already a 3xx
	case rr.code >= http.StatusBadRequest && rr.code < http.StatusInternalServerError:
		rr.code = http.StatusSeeOther
	case rr.code >= http.StatusInternalServerError:
		rr.code = http.StatusTemporaryRedirect
	default:
		rr.code = http.StatusFound
	}

	http.Redirect(w, r, rr.url.String(), rr.code)
	return nil
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// Calling code ought to pass Options in the correct order.
// An option requiring something set by another one should come after.
// do nonetheless attempts to retry calling functional options until all do not return errors or,
// a set of options unable to not return errors is reached.
//
// Should all options apply successfully, do returns a validly formed *Response.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{
		w:      w,
		r:      r,
		header: make(http.Header),
		tmpls:  make([]string, 0),
	}

	var err error
	redos := make([]Fn, 0)
	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			if err = opt(*doer, resp); err != nil {
				redos = append(redos, opt)
			}
		}
	}

	for i := -1; i != len(redos); {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			// redo shrinks redos; once its length holds steady,
			// only options that always fail remain.
			i = len(redos)
			redos = doer.redo(resp, redos...)
		}
	}

	if len(redos) == 0 {
		return resp, nil
	}

	err = nil
	for _, opt := range redos {
		nested := opt(*doer, resp)
		if err == nil {
			err = nested
			continue
		}

		err = fmt.Errorf("%w: %s", err, nested)
	}

	return resp, err
}

// encode writes the value set by Data in the media type mt.
func (doer *Responder) encode(w http.ResponseWriter, r *http.Request, mt string, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	switch mt {
	case jsonMediaType:
		err = json.NewEncoder(b).Encode(rr.data)
	default:
		b.WriteString(xml.Header)
		err = xml.NewEncoder(b).Encode(rr.data)
	}
	if err != nil {
		err = fmt.Errorf("%w: cannot encode %T as %s: %s", ErrInvalid, rr.data, mt, err)
		doer.Err(w, r, err)
		return err
	}

	w.Header().Set("Content-Type", mt+"; charset=UTF-8")
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// handleHtmlError renders the error template set on the Responder with code
// and reports errors.
func (doer *Responder) handleHtmlError(w http.ResponseWriter, r *http.Request, code int, err error) error {
	doer.logger.Error(err.Error(), &logger.LogContext{Error: err, Request: r})

	if doer.parser == nil || doer.templates.err == "" {
		http.Error(w, err.Error(), code)
		return err
	}

	tmpl, nested := doer.parser.Parse(doer.templates.err)
	if nested != nil {
		http.Error(w, err.Error(), code)
		return fmt.Errorf("%w: %s", err, nested)
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	data := map[string]any{"Contact": doer.contactErrMsg, "Error": err}
	if nested = tmpl.Execute(b, data); nested != nil {
		http.Error(w, err.Error(), code)
		return fmt.Errorf("%w: %s", err, nested)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, nested = b.WriteTo(w); nested != nil {
		return fmt.Errorf("%w: %s", err, nested)
	}

	return err
}

// redo applies as many may Options as it can, returning those Options that continue to throw an error.
func (doer *Responder) redo(r *Response, opts ...Fn) []Fn {
	bad := make([]Fn, 0)
	for _, opt := range opts {
		if err := opt(*doer, r); err != nil {
			bad = append(bad, opt)
		}
	}

	return bad
}
