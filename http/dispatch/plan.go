package dispatch

import (
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/xy-planning-network/signpost"
)

const (
	ForwardPrefix  = "forward:"
	RedirectPrefix = "redirect:"
)

// A Strategy is one way of producing a response.
type Strategy int

const (
	StrategyUnk Strategy = iota
	StrategyView
	StrategyRedirect
	StrategyForward
	StrategyBody
	StrategyEnvelope
)

func (s Strategy) String() string {
	switch s {
	case StrategyView:
		return "view"
	case StrategyRedirect:
		return "redirect"
	case StrategyForward:
		return "forward"
	case StrategyBody:
		return "body"
	case StrategyEnvelope:
		return "envelope"
	default:
		return "unknown"
	}
}

// A Resolution is the single Strategy chosen for a Result,
// along with what that Strategy needs.
type Resolution struct {
	Strategy Strategy

	// View is the logical view name for StrategyView.
	View string

	// Target is where StrategyRedirect and StrategyForward send the request.
	Target string

	// External marks a redirect Target that is a fully qualified URL.
	External bool

	// Code, Header, Value and Bytes describe the response for StrategyBody and StrategyEnvelope.
	Code   int
	Header http.Header
	Value  any
	Bytes  []byte
}

// Plan chooses how to respond to r given the handler's Result res.
// base is the path of the controller r was routed to; relative targets resolve against it.
//
// Plan has no side effects.
// If res names an empty view or an empty target, Plan returns signpost.ErrBadConfig.
func Plan(r *http.Request, base string, res Result) (Resolution, error) {
	switch res := res.(type) {
	case Void:
		name := viewName(r.URL.Path)
		if name == "" {
			return Resolution{}, fmt.Errorf("%w: no view name derivable from %q", signpost.ErrBadConfig, r.URL.Path)
		}

		return Resolution{Strategy: StrategyView, View: name}, nil

	case String:
		return planString(base, string(res))

	case Body:
		return Resolution{Strategy: StrategyBody, Code: codeOrOK(res.Code), Value: res.Value}, nil

	case Envelope:
		return Resolution{
			Strategy: StrategyEnvelope,
			Code:     codeOrOK(res.Code),
			Header:   res.Header.Clone(),
			Bytes:    res.Body,
		}, nil

	default:
		return Resolution{}, fmt.Errorf("%w: unknown result %T", signpost.ErrBadAny, res)
	}
}

func planString(base, s string) (Resolution, error) {
	switch {
	case strings.HasPrefix(s, RedirectPrefix):
		target := strings.TrimSpace(strings.TrimPrefix(s, RedirectPrefix))
		if target == "" {
			return Resolution{}, fmt.Errorf("%w: empty redirect target", signpost.ErrBadConfig)
		}

		if isQualified(target) {
			return Resolution{Strategy: StrategyRedirect, Target: target, External: true}, nil
		}

		return Resolution{Strategy: StrategyRedirect, Target: resolve(base, target)}, nil

	case strings.HasPrefix(s, ForwardPrefix):
		target := strings.TrimSpace(strings.TrimPrefix(s, ForwardPrefix))
		if target == "" {
			return Resolution{}, fmt.Errorf("%w: empty forward target", signpost.ErrBadConfig)
		}

		if isQualified(target) {
			return Resolution{}, fmt.Errorf("%w: cannot forward outside the server to %q", signpost.ErrBadConfig, target)
		}

		return Resolution{Strategy: StrategyForward, Target: resolve(base, target)}, nil

	default:
		if strings.Trim(s, "/ ") == "" {
			return Resolution{}, fmt.Errorf("%w: empty view name", signpost.ErrBadConfig)
		}

		return Resolution{Strategy: StrategyView, View: s}, nil
	}
}

// viewName derives a logical view name from a request path:
// /controller/void.html becomes controller/void.
func viewName(p string) string {
	p = strings.Trim(path.Clean("/"+p), "/")
	return strings.TrimSuffix(p, path.Ext(p))
}

// resolve joins a relative target onto base; targets starting with "/" stand alone.
func resolve(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return target
	}

	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}

	return strings.TrimSuffix(base, "/") + "/" + target
}

func isQualified(target string) bool {
	u, err := url.Parse(target)
	return err == nil && u.IsAbs() && u.Host != ""
}

func codeOrOK(code int) int {
	if code == 0 {
		return http.StatusOK
	}

	return code
}
