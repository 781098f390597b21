package history

import "sync"

// Memory is an in-process History. It backs tests, the demo binary and
// any host that drives navigation without a real browser; the bridge
// mirrors it to the thin client.
type Memory struct {
	mu        sync.Mutex
	entries   []Entry
	index     int
	listeners map[int]Listener
	nextID    int
}

var _ History = (*Memory)(nil)

// NewMemory creates a history stack with a single initial entry.
// An empty initial location defaults to "/".
func NewMemory(initial string) *Memory {
	if initial == "" {
		initial = "/"
	}
	return &Memory{
		entries:   []Entry{{Location: initial}},
		listeners: make(map[int]Listener),
	}
}

// Push appends an entry after the current position, dropping any forward
// entries, and moves to it.
func (m *Memory) Push(location string, state any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries[:m.index+1], Entry{Location: location, State: state})
	m.index = len(m.entries) - 1
}

// Replace overwrites the current entry in place.
func (m *Memory) Replace(location string, state any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[m.index] = Entry{Location: location, State: state}
}

// Back moves one entry backwards and notifies listeners.
func (m *Memory) Back() { m.Go(-1) }

// Forward moves one entry forwards and notifies listeners.
func (m *Memory) Forward() { m.Go(1) }

// Go moves by delta entries. Out-of-range moves are no-ops and do not
// notify, matching history.go(delta) in the browser.
func (m *Memory) Go(delta int) {
	m.mu.Lock()
	target := m.index + delta
	if delta == 0 || target < 0 || target >= len(m.entries) {
		m.mu.Unlock()
		return
	}
	m.index = target
	entry := m.entries[m.index]
	listeners := make([]Listener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	// Notify outside the lock; listeners typically re-enter via Current().
	for _, fn := range listeners {
		fn(entry)
	}
}

// Current returns the entry at the current position.
func (m *Memory) Current() Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[m.index]
}

// Len reports the number of entries in the stack.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Listen registers a traversal listener.
func (m *Memory) Listen(fn Listener) (remove func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}
