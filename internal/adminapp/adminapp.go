// Package adminapp is the demo application: a reservation admin
// dashboard for a real-estate agency, built on the navio navigation
// core. It exists to exercise the full surface end to end, so the
// controllers render static markup from a small in-memory dataset
// instead of talking to a backend.
package adminapp

import (
	"log/slog"

	"github.com/navio-dev/navio"
	"github.com/navio-dev/navio/pkg/middleware"
)

// Options configures the demo application.
type Options struct {
	BasePath    string
	DefaultPath string
	Logger      *slog.Logger
}

// New wires the admin dashboard: one controller per screen, routed
// through the page registry, with logging and metrics middleware.
func New(opts Options) *navio.App {
	if opts.DefaultPath == "" {
		opts.DefaultPath = "/dashboard"
	}

	app := navio.New(navio.Config{
		BasePath:    opts.BasePath,
		DefaultPath: opts.DefaultPath,
		Logger:      opts.Logger,
	})

	app.Use(
		middleware.Logging(app.Logger()),
		middleware.Prometheus(),
	)

	data := seedData()

	app.MustRegisterPage("dashboard", &dashboardPage{data: data}).
		MustRegisterPage("properties", &propertiesPage{data: data}).
		MustRegisterPage("property-detail", &propertyDetailPage{data: data}).
		MustRegisterPage("clients", &clientsPage{data: data}).
		MustRegisterPage("agents", &agentsPage{data: data}).
		MustRegisterPage("reservations", &reservationsPage{data: data})

	app.Page("/", "dashboard").
		Page("/dashboard", "dashboard").
		Page("/properties", "properties").
		Page("/properties/:id", "property-detail").
		Page("/clients", "clients").
		Page("/agents", "agents").
		Page("/reservations", "reservations")

	return app
}
