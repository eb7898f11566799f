package dispatch

import "net/http"

// A Result is what a Handler returns to describe the response it wants.
// The only implementations are Void, String, Body and Envelope.
type Result interface {
	isResult()
}

// Void asks for the logical view named after the request path.
type Void struct{}

// String is a logical view name, or, with RedirectPrefix or ForwardPrefix,
// a redirect or forward target.
type String string

// Body is a structured value serialized per content negotiation.
//
// Code defaults to 200.
type Body struct {
	Code  int
	Value any
}

// Envelope is written as is: its status, headers and body.
// No view is resolved and no serialization happens.
//
// Code defaults to 200.
type Envelope struct {
	Code   int
	Header http.Header
	Body   []byte
}

func (Void) isResult()     {}
func (String) isResult()   {}
func (Body) isResult()     {}
func (Envelope) isResult() {}

// Redirect returns the String redirecting to target.
func Redirect(target string) String { return String(RedirectPrefix + target) }

// Forward returns the String forwarding to target.
func Forward(target string) String { return String(ForwardPrefix + target) }
