package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/navio-dev/navio/internal/adminapp"
	"github.com/navio-dev/navio/internal/config"
	"github.com/navio-dev/navio/pkg/bridge"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo admin dashboard server",
		Long: `Run the reservation admin dashboard.

The server mounts the HTML shell, the WebSocket bridge the thin
client connects to, and (unless disabled) the Prometheus metrics
endpoint. Configuration comes from NAVIO_* environment variables,
with an optional .env file.

Examples:
  navio serve
  navio serve --addr=:8080
  NAVIO_DEFAULT_PATH=/properties navio serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from NAVIO_ADDR)")

	return cmd
}

func runServe(addr string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	app := adminapp.New(adminapp.Options{
		BasePath:    cfg.BasePath,
		DefaultPath: cfg.DefaultPath,
		Logger:      logger,
	})
	defer app.Close()
	app.Start()

	br := bridge.New(app.Navigator(), bridge.Config{
		Logger:      logger,
		CheckOrigin: originChecker(cfg.AllowedOrigins),
		Content:     app.Container().Content,
	})
	defer br.Close()

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Handle("/ws", br)
	r.Get("/client.js", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Write(clientJS)
	})
	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		// Every app path serves the shell; the client takes over from
		// there.
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, shell, cfg.BasePath)
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: r}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr, "base_path", cfg.BasePath)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// originChecker allows the listed origins on top of same-origin. An
// empty list keeps the gorilla default.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
			return true
		}
		return set[origin]
	}
}

//go:embed client.js
var clientJS []byte

const shell = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>Navio Admin</title>
  <base href="%s/">
</head>
<body>
  <nav>
    <a href="/dashboard" data-link>Dashboard</a>
    <a href="/properties" data-link>Properties</a>
    <a href="/clients" data-link>Clients</a>
    <a href="/agents" data-link>Agents</a>
    <a href="/reservations" data-link>Reservations</a>
  </nav>
  <main id="navio-root"></main>
  <script src="/client.js"></script>
</body>
</html>
`
