package router

import (
	"fmt"
	"strings"

	"github.com/navio-dev/navio/pkg/history"
	"github.com/navio-dev/navio/pkg/navpath"
)

// NavigateOptions configures one navigation.
type NavigateOptions struct {
	// Replace replaces the current history entry instead of pushing.
	Replace bool

	// State is the opaque value stored on the history entry.
	State any

	// Query is appended to the path as an encoded query string.
	Query map[string]string
}

// NavigateOption is a functional option for Navigate.
type NavigateOption func(*NavigateOptions)

// WithReplace replaces the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *NavigateOptions) { o.Replace = true }
}

// WithState attaches an opaque state value to the history entry.
func WithState(state any) NavigateOption {
	return func(o *NavigateOptions) { o.State = state }
}

// WithQuery appends query parameters to the navigation target.
func WithQuery(query map[string]string) NavigateOption {
	return func(o *NavigateOptions) { o.Query = query }
}

// Navigator is the user-facing entry point that causes dispatches. It
// updates history and triggers the dispatcher; back/forward traversal
// dispatches through the history listener, the popstate analogue, so
// a Back() is handled identically whether it came from this API or
// from the platform.
type Navigator struct {
	history    history.History
	dispatcher *Dispatcher
	basePath   string
	unlisten   func()
}

// NewNavigator wires a navigator over a history stack and a dispatcher.
// It registers the traversal listener and hands the dispatcher its
// not-found redirect. Call Close to detach from the history stack.
func NewNavigator(h history.History, d *Dispatcher) *Navigator {
	n := &Navigator{
		history:    h,
		dispatcher: d,
		basePath:   d.basePath,
	}
	n.unlisten = h.Listen(func(e history.Entry) {
		d.Dispatch(e.Location, e.State)
	})
	d.redirect = func(path string) {
		// Fallback redirects replace the failed entry so Back does not
		// land on the unmatched path again.
		_ = n.Navigate(path, WithReplace())
	}
	return n
}

// Navigate pushes (or replaces) a history entry for the path and
// dispatches it. The returned error covers only malformed or absolute
// paths; failures inside middleware and handlers stay behind the
// dispatcher's error policy and never propagate here.
func (n *Navigator) Navigate(path string, opts ...NavigateOption) error {
	var o NavigateOptions
	for _, opt := range opts {
		opt(&o)
	}

	clean, err := navpath.ValidateNavPath(path)
	if err != nil {
		return fmt.Errorf("navigate %q: %w", path, err)
	}
	path = clean

	location := n.basePath + path
	if q := navpath.EncodeQuery(o.Query); q != "" {
		sep := "?"
		if strings.Contains(location, "?") {
			sep = "&"
		}
		location += sep + q
	}

	if o.Replace {
		n.history.Replace(location, o.State)
	} else {
		n.history.Push(location, o.State)
	}
	n.dispatcher.Dispatch(location, o.State)
	return nil
}

// Back moves the history back one entry. The dispatch happens through
// the traversal notification, not here.
func (n *Navigator) Back() { n.history.Back() }

// Forward moves the history forward one entry.
func (n *Navigator) Forward() { n.history.Forward() }

// Refresh re-runs the dispatcher against the current location without
// touching history. This is the retry affordance the error view calls.
func (n *Navigator) Refresh() {
	e := n.history.Current()
	n.dispatcher.Dispatch(e.Location, e.State)
}

// CurrentRoute returns the most recently dispatched route record.
func (n *Navigator) CurrentRoute() *CurrentRoute {
	return n.dispatcher.Current()
}

// IsCurrentRoute reports whether the given path is the current one.
func (n *Navigator) IsCurrentRoute(path string) bool {
	return n.dispatcher.IsCurrent(path)
}

// History exposes the underlying history stack.
func (n *Navigator) History() history.History { return n.history }

// Dispatcher exposes the dispatcher this navigator drives.
func (n *Navigator) Dispatcher() *Dispatcher { return n.dispatcher }

// Close detaches the navigator from the history stack and cancels the
// last dispatch's context.
func (n *Navigator) Close() {
	if n.unlisten != nil {
		n.unlisten()
		n.unlisten = nil
	}
	n.dispatcher.Close()
}
