package page

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Coordinator swaps page controllers as navigation happens. It destroys
// the outgoing controller before loading the incoming one, and drops
// loads whose navigation id has already been superseded, so a slow
// earlier navigation cannot clobber the screen of a later one.
type Coordinator struct {
	mu        sync.Mutex
	registry  *Registry
	container Container
	logger    *slog.Logger

	active    Controller
	activeNav uint64
}

// NewCoordinator creates a coordinator over a registry and container.
// A nil logger falls back to slog.Default().
func NewCoordinator(registry *Registry, container Container, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		registry:  registry,
		container: container,
		logger:    logger,
	}
}

// Show loads the named controller for the given navigation id.
//
// A stale call (navID older than the newest one seen) is dropped
// silently: its effects are suppressed rather than aborted, and the
// controller that owns the screen keeps it.
func (co *Coordinator) Show(ctx context.Context, navID uint64, name string, params map[string]string) error {
	next, ok := co.registry.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}

	co.mu.Lock()
	if navID < co.activeNav {
		co.mu.Unlock()
		co.logger.Debug("stale page load dropped", "page", name, "nav_id", navID)
		return nil
	}
	outgoing := co.active
	co.active = next
	co.activeNav = navID
	co.mu.Unlock()

	if outgoing != nil && outgoing != next {
		outgoing.Destroy()
	}

	if err := next.Load(ctx, co.container, params); err != nil {
		return fmt.Errorf("load page %q: %w", name, err)
	}
	return nil
}

// Active returns the controller currently owning the container, if any.
func (co *Coordinator) Active() Controller {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.active
}

// Container returns the render target the coordinator writes into.
func (co *Coordinator) Container() Container {
	return co.container
}
