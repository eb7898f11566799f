package demo

import (
	"net/http"
	"strings"
)

// A Toolbox is a set of Tools the index page links to,
// one per kind of result a handler can return.
type Toolbox []Tool

// Filter returns a Toolbox after removing all Tools that cannot be rendered.
// If none can be rendered, Filter returns a zero-value Toolbox.
func (t Toolbox) Filter() Toolbox {
	var n int
	for _, tool := range t {
		if tool.Render() {
			t[n] = tool
			n++
		}
	}

	if n == 0 {
		return make(Toolbox, 0)
	}

	return t[:n]
}

// A Tool is a set of actions grouped under a category.
type Tool struct {
	Actions []ToolAction `json:"actions"`
	Title   string       `json:"title"`
}

// Render asserts whether the Tool should be rendered.
func (t Tool) Render() bool { return len(t.Actions) > 0 }

// A ToolAction is a specific request the end user can make.
// Actions whose Method is not GET render as a form.
type ToolAction struct {
	Method string `json:"method"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}

// IsGet reports whether following a link performs the action.
func (ta ToolAction) IsGet() bool { return ta.Method == "" || ta.Method == http.MethodGet }

// newToolbox groups a ToolAction for each route listed in routes
// under the Tool titled by group, resolved against base.
func newToolbox(base string, group map[string]string, routes []toolRoute) Toolbox {
	var tb Toolbox
	idx := make(map[string]int)
	for _, r := range routes {
		title, ok := group[r.name]
		if !ok {
			continue
		}

		i, ok := idx[title]
		if !ok {
			i = len(tb)
			idx[title] = i
			tb = append(tb, Tool{Title: title})
		}

		tb[i].Actions = append(tb[i].Actions, ToolAction{
			Method: r.method,
			Name:   r.name,
			URL:    strings.TrimSuffix(base, "/") + r.target,
		})
	}

	return tb.Filter()
}

type toolRoute struct {
	method string
	name   string
	target string
}
