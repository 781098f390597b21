package middleware

import (
	"log/slog"
	"time"

	"github.com/navio-dev/navio/pkg/router"
)

// Logging creates middleware that logs every dispatch with its path,
// navigation id, duration and outcome. A nil logger falls back to
// slog.Default().
func Logging(logger *slog.Logger) router.Middleware {
	if logger == nil {
		logger = slog.Default()
	}

	return router.MiddlewareFunc(func(ctx *router.Context, next func() error) error {
		start := time.Now()
		err := next()
		attrs := []any{
			"path", ctx.Path,
			"nav_id", ctx.NavID(),
			"duration", time.Since(start),
		}
		if err != nil {
			logger.Error("navigation error", append(attrs, "error", err)...)
		} else {
			logger.Debug("navigation", attrs...)
		}
		return err
	})
}
