// Package history abstracts the browser history stack.
//
// The navigator pushes and replaces entries; back/forward traversal
// notifies listeners the way the browser fires popstate. Push and Replace
// deliberately do NOT notify: the party that changes the location is the
// one that dispatches it, matching the platform contract where pushState
// never fires popstate.
package history

// Entry is one history record: a location plus the opaque state value
// carried with it.
type Entry struct {
	// Location is the path including any query string.
	Location string

	// State is an arbitrary value associated with the entry.
	State any
}

// Listener is invoked when the current entry changes through traversal
// (Back, Forward, Go). It is the popstate analogue.
type Listener func(Entry)

// History is the navigation controller's view of the history stack.
type History interface {
	// Push appends a new entry after the current position, discarding
	// any forward entries.
	Push(location string, state any)

	// Replace overwrites the current entry in place.
	Replace(location string, state any)

	// Back moves one entry backwards. At the oldest entry it is a no-op.
	Back()

	// Forward moves one entry forwards. At the newest entry it is a no-op.
	Forward()

	// Go moves by a relative offset, clamped no-op when out of range.
	Go(delta int)

	// Current returns the entry at the current position.
	Current() Entry

	// Len reports the number of entries in the stack.
	Len() int

	// Listen registers a traversal listener and returns a function that
	// removes it.
	Listen(fn Listener) (remove func())
}
