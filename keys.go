package signpost

import "context"

type Key string

const (
	// attributesKey stashes the Attributes shared by every handler serving a request.
	attributesKey Key = "AttributesKey"

	// ForwardDepthKey stashes how many times a request has been forwarded internally.
	ForwardDepthKey Key = "ForwardDepthKey"

	// IpAddrKey stashes the IP address of an HTTP request being handled by signpost.
	IpAddrKey Key = "IpAddrKey"

	// OriginalPathKey stashes the path a client requested before any forward.
	OriginalPathKey Key = "OriginalPathKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// Key returns k so it can be used as a key in a map[string].
func (k Key) Key() string { return string(k) }

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "signpost context key: " + string(k)
}

// Attributes are the key-value pairs shared by every handler serving a single request.
// A forwarded request carries the same Attributes as the request that forwarded it.
//
// Attributes live as long as the request; nothing persists them.
type Attributes map[string]any

// NewAttributesContext adds attrs to ctx, returning the resulting context.
// If attributes have already been added to ctx, attrs are merged into them.
// If any keys collide, those in attrs overwrite previous values.
func NewAttributesContext(ctx context.Context, attrs Attributes) context.Context {
	existing, ok := ctx.Value(attributesKey).(Attributes)
	if !ok {
		existing = make(Attributes)
	}

	for k, v := range attrs {
		existing[k] = v
	}

	return context.WithValue(ctx, attributesKey, existing)
}

// AttributesFromContext retrieves the Attributes in ctx.
// If none are set, it returns an empty, detached Attributes.
func AttributesFromContext(ctx context.Context) Attributes {
	attrs, ok := ctx.Value(attributesKey).(Attributes)
	if !ok {
		return make(Attributes)
	}

	return attrs
}

// ForwardDepthFromContext retrieves the number of internal forwards recorded in ctx.
func ForwardDepthFromContext(ctx context.Context) int {
	depth, _ := ctx.Value(ForwardDepthKey).(int)
	return depth
}
