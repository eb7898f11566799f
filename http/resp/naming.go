package resp

import (
	"path"
	"strings"
)

// A ViewNamer maps a logical view name to the path of the template rendering it.
type ViewNamer interface {
	ViewPath(name string) string
}

// PrefixSuffix surrounds a logical view name with a fixed prefix and suffix,
// so "controller/void" becomes "views/controller/void.tmpl" by default.
//
// PrefixSuffix implements ViewNamer.
type PrefixSuffix struct {
	Prefix string
	Suffix string
}

// DefaultViewNamer is the ViewNamer a Responder uses unless WithViewNamer is called.
var DefaultViewNamer = PrefixSuffix{Prefix: "views/", Suffix: ".tmpl"}

// ViewPath joins Prefix, name, and Suffix, cleaning the result into a slash-separated,
// unrooted path suitable for an fs.FS.
func (ps PrefixSuffix) ViewPath(name string) string {
	p := path.Clean(ps.Prefix + strings.TrimPrefix(name, "/") + ps.Suffix)
	return strings.TrimPrefix(p, "/")
}

// ViewNamerFunc is an adapter allowing ordinary functions to act as a ViewNamer.
type ViewNamerFunc func(name string) string

// ViewPath calls f(name).
func (f ViewNamerFunc) ViewPath(name string) string { return f(name) }
