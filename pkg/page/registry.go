package page

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	ErrUnknownPage   = errors.New("unknown page controller")
	ErrDuplicatePage = errors.New("page controller already registered")
	ErrNilController = errors.New("nil page controller")
)

// Registry is the explicit name-to-controller map. Controllers are
// registered once at startup; lookups afterwards are read-only.
type Registry struct {
	mu          sync.RWMutex
	controllers map[string]Controller
}

// NewRegistry creates an empty controller registry.
func NewRegistry() *Registry {
	return &Registry{controllers: make(map[string]Controller)}
}

// Register binds a name to a controller. Re-registering a name or
// registering a nil controller is a wiring mistake and fails.
func (r *Registry) Register(name string, c Controller) error {
	if c == nil {
		return fmt.Errorf("%w: %q", ErrNilController, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.controllers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePage, name)
	}
	r.controllers[name] = c
	return nil
}

// Get looks up a controller by name.
func (r *Registry) Get(name string) (Controller, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.controllers[name]
	return c, ok
}

// Names returns the registered controller names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.controllers))
	for name := range r.controllers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
