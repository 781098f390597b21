package router

import (
	"context"
	"regexp"
)

// Handler handles one navigation to a matched route.
// Errors are routed to the dispatcher's error policy; they never reach
// the caller of Navigate.
type Handler func(ctx *Context) error

// Route is a registered path-pattern-to-handler binding. Routes are
// registered once at startup and immutable afterwards.
type Route struct {
	// Pattern is the path template, e.g. "/properties/:id".
	Pattern string

	// Handler is invoked when the route wins a dispatch.
	Handler Handler

	matcher    *regexp.Regexp
	paramNames []string
}

// ParamNames returns the placeholder names in declaration order.
func (r *Route) ParamNames() []string {
	names := make([]string, len(r.paramNames))
	copy(names, r.paramNames)
	return names
}

// Context is the ephemeral value passed through middleware and into the
// handler for one navigation event. It is constructed fresh on every
// dispatch and discarded after the handler settles.
type Context struct {
	// Path is the normalized pathname (leading slash, base path removed).
	Path string

	// Query maps query-string keys to values; the last occurrence of a
	// repeated key wins.
	Query map[string]string

	// Params maps route placeholder names to URL-decoded captures.
	// Empty until a route has matched.
	Params map[string]string

	// State is the opaque value carried through the history entry.
	State any

	navID  uint64
	ctx    context.Context
	values map[any]any
}

// NavID returns the monotonically increasing id of this navigation.
// Later navigations always carry larger ids.
func (c *Context) NavID() uint64 { return c.navID }

// StdContext returns the std context for this navigation. It is
// cancelled when a newer navigation supersedes this one; handlers that
// honor it stop early, handlers that don't merely have their effects
// suppressed downstream.
func (c *Context) StdContext() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

// Done is shorthand for StdContext().Done().
func (c *Context) Done() <-chan struct{} { return c.StdContext().Done() }

// SetValue stores a value scoped to this navigation. Middleware uses
// this to hand data to handlers further down the chain.
func (c *Context) SetValue(key, value any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = value
}

// Value retrieves a value stored with SetValue.
func (c *Context) Value(key any) any {
	if c.values == nil {
		return nil
	}
	return c.values[key]
}

// Middleware runs before dispatch, in registration order. Returning an
// error stops the chain and reports an error; returning nil without
// calling next vetoes the navigation silently.
type Middleware interface {
	Handle(ctx *Context, next func() error) error
}

// MiddlewareFunc is a function adapter for Middleware.
type MiddlewareFunc func(ctx *Context, next func() error) error

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(ctx *Context, next func() error) error {
	return f(ctx, next)
}

// ErrorHandler receives any error thrown by middleware or a handler
// during dispatch. It renders the failure; the error is never re-thrown.
type ErrorHandler func(ctx *Context, err error)

// NotFoundHandler renders the view for a path no route matches, once
// the fallback redirect is off the table.
type NotFoundHandler func(ctx *Context)

// CurrentRoute is the single record of where the app is now: the route
// that won the most recent successful dispatch and its context. UI reads
// it to highlight active navigation links.
type CurrentRoute struct {
	Route   *Route
	Context *Context
}

// Path returns the dispatched path, or "" for a nil record.
func (cr *CurrentRoute) Path() string {
	if cr == nil || cr.Context == nil {
		return ""
	}
	return cr.Context.Path
}
