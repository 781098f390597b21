package router

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/navio-dev/navio/pkg/navpath"
)

// Dispatcher turns a change in location into a page load. It parses the
// location, runs the middleware chain, matches the route table and
// invokes the winning handler; unmatched paths go through the not-found
// policy and thrown errors through the error policy.
//
// Dispatch is not reentrant-safe: a Navigate call made from inside a
// running handler re-enters with a fresh context and a larger navigation
// id. The id is what keeps rapid double-navigation sane — CurrentRoute
// is last-write-wins, a superseded dispatch cannot overwrite it, and the
// superseded dispatch's std context is cancelled so cooperative handlers
// can stop early.
type Dispatcher struct {
	table  *Table
	logger *slog.Logger

	basePath    string
	defaultPath string

	middleware []Middleware
	notFound   NotFoundHandler
	onError    ErrorHandler

	// redirect performs the replace-navigation used by the not-found
	// fallback. Wired by the Navigator.
	redirect func(path string)

	seq      atomic.Uint64
	inFlight atomic.Int32

	mu        sync.Mutex
	current   *CurrentRoute
	cancel    context.CancelFunc
	listeners map[int]func(*CurrentRoute)
	nextID    int
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithBasePath sets a prefix stripped from every dispatched location.
func WithBasePath(base string) DispatcherOption {
	return func(d *Dispatcher) { d.basePath = base }
}

// WithDefaultPath sets the landing route unmatched paths fall back to.
func WithDefaultPath(path string) DispatcherOption {
	return func(d *Dispatcher) { d.defaultPath = path }
}

// WithNotFound sets the view rendered when no redirect target remains.
func WithNotFound(h NotFoundHandler) DispatcherOption {
	return func(d *Dispatcher) { d.notFound = h }
}

// WithErrorHandler sets the view rendered for handler and middleware
// errors.
func WithErrorHandler(h ErrorHandler) DispatcherOption {
	return func(d *Dispatcher) { d.onError = h }
}

// NewDispatcher creates a dispatcher over a route table.
func NewDispatcher(table *Table, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		table:     table,
		logger:    slog.Default(),
		listeners: make(map[int]func(*CurrentRoute)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Use appends middleware, run in registration order before every
// dispatch. Middleware is process-lifetime; register it before the
// first navigation.
func (d *Dispatcher) Use(mw ...Middleware) {
	d.middleware = append(d.middleware, mw...)
}

// Dispatching reports whether at least one dispatch is in flight.
func (d *Dispatcher) Dispatching() bool {
	return d.inFlight.Load() > 0
}

// Dispatch resolves a location (path plus optional query string) to a
// route and runs it. Errors from middleware and handlers are absorbed by
// the error policy; Dispatch never returns one to its caller.
func (d *Dispatcher) Dispatch(location string, state any) {
	id := d.seq.Add(1)

	ctx, cancel := context.WithCancel(context.Background())
	d.mu.Lock()
	if d.cancel != nil {
		// A newer navigation supersedes the previous one.
		d.cancel()
	}
	d.cancel = cancel
	d.mu.Unlock()

	rawPath, rawQuery := navpath.SplitPathAndQuery(location)
	path := navpath.StripBase(rawPath, d.basePath)
	if path == "" {
		path = "/"
	}

	c := &Context{
		Path:   path,
		Query:  navpath.ParseQuery(rawQuery),
		Params: make(map[string]string),
		State:  state,
		navID:  id,
		ctx:    ctx,
	}

	d.inFlight.Add(1)
	defer d.inFlight.Add(-1)
	defer func() {
		if r := recover(); r != nil {
			d.fail(c, toError(r))
		}
	}()

	// The final chain link performs the actual resolution, so a
	// middleware that declines to call next vetoes the navigation:
	// no lookup, no handler, CurrentRoute untouched, nothing surfaced.
	err := ComposeMiddleware(c, d.middleware, func() error {
		return d.resolve(c)
	})
	if err != nil {
		d.fail(c, err)
	}
}

// resolve looks the path up and invokes the winner, or the not-found
// policy when nothing matches.
func (d *Dispatcher) resolve(c *Context) error {
	route, captures, ok := d.table.Find(c.Path)
	if !ok {
		d.handleNotFound(c)
		return nil
	}

	for i, name := range route.paramNames {
		c.Params[name] = navpath.DecodeSegment(captures[i])
	}

	d.setCurrent(route, c)
	return route.Handler(c)
}

// setCurrent overwrites CurrentRoute, last-write-wins by navigation id:
// a dispatch that has already been superseded leaves the newer record in
// place.
func (d *Dispatcher) setCurrent(route *Route, c *Context) {
	d.mu.Lock()
	if d.current != nil && d.current.Context.navID > c.navID {
		d.mu.Unlock()
		return
	}
	d.current = &CurrentRoute{Route: route, Context: c}
	record := d.current
	listeners := make([]func(*CurrentRoute), 0, len(d.listeners))
	for _, fn := range d.listeners {
		listeners = append(listeners, fn)
	}
	d.mu.Unlock()

	for _, fn := range listeners {
		fn(record)
	}
}

// handleNotFound applies the fallback policy: replace-navigate once to
// the default landing path, except when the unmatched path already is
// the root or the default — then there is nothing left to redirect to
// and the not-found view renders instead. This is what keeps a
// temporarily unregistered default path from looping.
func (d *Dispatcher) handleNotFound(c *Context) {
	if d.defaultPath != "" && d.redirect != nil &&
		c.Path != "/" && c.Path != d.defaultPath {
		d.logger.Debug("no route matched, redirecting to default",
			"path", c.Path, "default", d.defaultPath)
		d.redirect(d.defaultPath)
		return
	}

	d.logger.Warn("no route matched", "path", c.Path)
	if d.notFound != nil {
		d.notFound(c)
	}
}

// fail applies the error policy: log, render the error view, swallow.
func (d *Dispatcher) fail(c *Context, err error) {
	d.logger.Error("navigation failed", "path", c.Path, "nav_id", c.navID, "error", err)
	if d.onError != nil {
		d.onError(c, err)
	}
}

// Current returns the most recently dispatched route record, or nil
// before the first successful dispatch.
func (d *Dispatcher) Current() *CurrentRoute {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// IsCurrent reports whether the given path (query ignored) is the one
// most recently dispatched.
func (d *Dispatcher) IsCurrent(path string) bool {
	p, _ := navpath.SplitPathAndQuery(path)
	p = navpath.StripBase(p, d.basePath)
	return d.Current().Path() == p
}

// OnChange registers a listener invoked after every CurrentRoute update.
// The bridge uses this to push route changes to connected clients.
func (d *Dispatcher) OnChange(fn func(*CurrentRoute)) (remove func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners, id)
	}
}

// Close cancels the most recent dispatch's context and releases it.
// Idempotent; further dispatches after Close work normally.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// toError normalizes a recovered panic value.
func toError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", v)
}
