package navio

import (
	"log/slog"

	"github.com/navio-dev/navio/pkg/history"
	"github.com/navio-dev/navio/pkg/page"
	"github.com/navio-dev/navio/pkg/router"
)

// Config is the application configuration. The zero value is usable:
// an in-memory history, a buffer container and slog.Default().
type Config struct {
	// BasePath is a prefix stripped from every location before matching,
	// for apps mounted below the origin root (e.g. "/admin").
	BasePath string

	// DefaultPath is the landing route that unmatched paths fall back
	// to. Empty disables the fallback redirect; unmatched paths then go
	// straight to the not-found view.
	DefaultPath string

	// Logger is the structured logger. If nil, slog.Default() is used.
	Logger *slog.Logger

	// History is the history stack to drive. If nil, an in-memory stack
	// starting at the base path is used.
	History history.History

	// Container is the render target page controllers write into.
	// If nil, a buffer container is used.
	Container page.Container

	// NotFound overrides the view shown when no route matches and no
	// redirect target remains.
	NotFound router.NotFoundHandler

	// OnError overrides the view shown when a middleware or handler
	// fails. The default renders a generic message with a retry hint;
	// Refresh() is the retry.
	OnError router.ErrorHandler
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Container == nil {
		c.Container = page.NewBuffer()
	}
	if c.History == nil {
		initial := c.BasePath
		if initial == "" {
			initial = "/"
		}
		c.History = history.NewMemory(initial)
	}
	return c
}
