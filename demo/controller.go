package demo

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/dispatch"
	"github.com/xy-planning-network/signpost/http/req"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/logger"
)

const (
	// Base is the path every ReturnTypes route is mounted under.
	Base = "/controller/"

	// PersonKey names the Attribute holding the Person bound by StringWithCommandObject.
	PersonKey = "person"

	// ForwardedFromKey names the Attribute ReturnStringForForward sets before forwarding.
	ForwardedFromKey = "forwardedFrom"

	// ToolboxKey names the Attribute holding the Toolbox Index renders.
	ToolboxKey = "toolbox"

	name = "Yoseph"
	age  = 23
)

// ReturnTypes answers every route with a different kind of dispatch.Result.
type ReturnTypes struct {
	logger  logger.Logger
	parser  *req.Parser
	toolbox Toolbox
}

// NewReturnTypes constructs a ReturnTypes logging with l.
// A nil l discards logs.
func NewReturnTypes(l logger.Logger) *ReturnTypes {
	if l == nil {
		l = logger.New(logger.WithLevel(logger.LogLevelFatal))
	}

	return &ReturnTypes{logger: l, parser: req.NewParser()}
}

// Routes lists every ReturnTypes handler, adapted by c,
// relative to a router mounted at c's base.
func (rt *ReturnTypes) Routes(c *dispatch.Controller) []router.Route {
	rt.toolbox = newToolbox(c.Base(), toolGroups, toolRoutes)

	return []router.Route{
		{Path: "/", Method: http.MethodGet, Handler: c.Handle(rt.Index)},
		{Path: "/void", Method: http.MethodGet, Handler: c.Handle(rt.Void)},
		{Path: "/string", Method: http.MethodGet, Handler: c.Handle(rt.String)},
		{
			Path:    "/stringWithCommandObject",
			Method:  http.MethodGet,
			Handler: c.Handle(rt.StringWithCommandObject),
			Params:  []string{"name", "age"},
		},
		{Path: "/returnStringForRedirection", Method: http.MethodGet, Handler: c.Handle(rt.ReturnStringForRedirection)},
		{Path: "/returnStringForForward", Method: http.MethodPost, Handler: c.Handle(rt.ReturnStringForForward)},
		{Path: "/returnJavaObject", Method: http.MethodGet, Handler: c.Handle(rt.ReturnJavaObject)},
		{Path: "/returnResponseEntity", Method: http.MethodGet, Handler: c.Handle(rt.ReturnResponseEntity)},
		{Path: "/redirect", Method: http.MethodGet, Handler: c.Handle(rt.Redirect)},
		{Path: "/forward", Method: http.MethodPost, Handler: c.Handle(rt.Forward)},
	}
}

var toolGroups = map[string]string{
	"void":                       "Views",
	"string":                     "Views",
	"stringWithCommandObject":    "Views",
	"returnStringForRedirection": "Redirects and forwards",
	"returnStringForForward":     "Redirects and forwards",
	"returnJavaObject":           "Bodies",
	"returnResponseEntity":       "Bodies",
}

var toolRoutes = []toolRoute{
	{http.MethodGet, "void", "/void"},
	{http.MethodGet, "string", "/string"},
	{http.MethodGet, "stringWithCommandObject", "/stringWithCommandObject?name=Yoseph&age=23"},
	{http.MethodGet, "returnStringForRedirection", "/returnStringForRedirection"},
	{http.MethodPost, "returnStringForForward", "/returnStringForForward"},
	{http.MethodGet, "returnJavaObject", "/returnJavaObject"},
	{http.MethodGet, "returnResponseEntity", "/returnResponseEntity"},
}

// Index renders the view index, linking to every other handler.
func (rt *ReturnTypes) Index(r *http.Request) (dispatch.Result, error) {
	rt.invoked("Index", r)

	signpost.AttributesFromContext(r.Context())[ToolboxKey] = rt.toolbox
	return dispatch.String("index"), nil
}

// Void renders the view named after the request path.
func (rt *ReturnTypes) Void(r *http.Request) (dispatch.Result, error) {
	rt.invoked("Void", r)
	return dispatch.Void{}, nil
}

// String renders the view Yoseph.
func (rt *ReturnTypes) String(r *http.Request) (dispatch.Result, error) {
	rt.invoked("String", r)
	return dispatch.String(name), nil
}

// StringWithCommandObject binds the request into a Person,
// shares it with the view through signpost.Attributes
// and renders the view Yoseph.
func (rt *ReturnTypes) StringWithCommandObject(r *http.Request) (dispatch.Result, error) {
	rt.invoked("StringWithCommandObject", r)

	var p Person
	if err := rt.parser.ParseForm(r, &p); err != nil {
		return nil, err
	}

	signpost.AttributesFromContext(r.Context())[PersonKey] = p
	rt.logger.Debug(fmt.Sprintf("bound %+v", p), nil)

	return dispatch.String(name), nil
}

// ReturnStringForRedirection redirects to redirect, relative to the Controller's base.
func (rt *ReturnTypes) ReturnStringForRedirection(r *http.Request) (dispatch.Result, error) {
	rt.invoked("ReturnStringForRedirection", r)
	return dispatch.Redirect("redirect"), nil
}

// ReturnStringForForward forwards to forward, relative to the Controller's base.
func (rt *ReturnTypes) ReturnStringForForward(r *http.Request) (dispatch.Result, error) {
	rt.invoked("ReturnStringForForward", r)

	signpost.AttributesFromContext(r.Context())[ForwardedFromKey] = r.URL.Path
	return dispatch.Forward("forward"), nil
}

// ReturnJavaObject serializes a Person in whichever format the client accepts.
func (rt *ReturnTypes) ReturnJavaObject(r *http.Request) (dispatch.Result, error) {
	rt.invoked("ReturnJavaObject", r)
	return dispatch.Body{Value: Person{Name: name, Age: age}}, nil
}

// ReturnResponseEntity writes its status, header and body exactly.
//
// The body is not valid JSON despite its Content-Type; it is sent as is.
func (rt *ReturnTypes) ReturnResponseEntity(r *http.Request) (dispatch.Result, error) {
	rt.invoked("ReturnResponseEntity", r)

	header := make(http.Header)
	header.Set("Content-Type", "application/json; charset=utf8")

	return dispatch.Envelope{
		Code:   http.StatusOK,
		Header: header,
		Body:   []byte(fmt.Sprintf("{ 'name': '%s', 'age': %d }", name, age)),
	}, nil
}

// Redirect renders the view redirect.
func (rt *ReturnTypes) Redirect(r *http.Request) (dispatch.Result, error) {
	rt.invoked("Redirect", r)
	return dispatch.String("redirect"), nil
}

// Forward renders the view forward.
func (rt *ReturnTypes) Forward(r *http.Request) (dispatch.Result, error) {
	rt.invoked("Forward", r)
	return dispatch.String("forward"), nil
}

func (rt *ReturnTypes) invoked(handler string, r *http.Request) {
	rt.logger.Debug(fmt.Sprintf("%s invoked", handler), &logger.LogContext{Request: r})
}
