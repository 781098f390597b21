package navio

import (
	"fmt"
	"log/slog"

	"github.com/navio-dev/navio/pkg/history"
	"github.com/navio-dev/navio/pkg/page"
	"github.com/navio-dev/navio/pkg/router"
)

// App composes the navigation core: route table, dispatcher, navigator,
// history stack and the page-controller registry with its lifecycle
// coordinator. Construct one App per application (or per test); nothing
// here is a process-wide singleton.
//
//	app := navio.New(navio.Config{DefaultPath: "/dashboard"})
//	app.RegisterPage("dashboard", dashboardController)
//	app.Page("/dashboard", "dashboard")
//	app.Start()
type App struct {
	config      Config
	logger      *slog.Logger
	table       *router.Table
	dispatcher  *router.Dispatcher
	navigator   *router.Navigator
	pages       *page.Registry
	coordinator *page.Coordinator
	container   page.Container
}

// New creates an application from the configuration.
func New(cfg Config) *App {
	cfg = cfg.withDefaults()

	a := &App{
		config:    cfg,
		logger:    cfg.Logger,
		table:     router.NewTable(),
		pages:     page.NewRegistry(),
		container: cfg.Container,
	}
	a.coordinator = page.NewCoordinator(a.pages, a.container, cfg.Logger)

	notFound := cfg.NotFound
	if notFound == nil {
		notFound = func(c *router.Context) {
			a.container.SetContent(notFoundView(c.Path))
		}
	}
	onError := cfg.OnError
	if onError == nil {
		onError = func(c *router.Context, err error) {
			a.container.SetContent(errorView(c.Path))
		}
	}

	a.dispatcher = router.NewDispatcher(a.table,
		router.WithLogger(cfg.Logger),
		router.WithBasePath(cfg.BasePath),
		router.WithDefaultPath(cfg.DefaultPath),
		router.WithNotFound(notFound),
		router.WithErrorHandler(onError),
	)
	a.navigator = router.NewNavigator(cfg.History, a.dispatcher)

	return a
}

// Route registers a raw route handler. Returns the app for chaining.
func (a *App) Route(pattern string, handler router.Handler) *App {
	a.table.AddRoute(pattern, handler)
	return a
}

// RegisterPage binds a name to a page controller in the registry.
func (a *App) RegisterPage(name string, c page.Controller) error {
	return a.pages.Register(name, c)
}

// MustRegisterPage is RegisterPage for startup wiring, where a duplicate
// registration is a programming error.
func (a *App) MustRegisterPage(name string, c page.Controller) *App {
	if err := a.pages.Register(name, c); err != nil {
		panic(fmt.Errorf("navio: %w", err))
	}
	return a
}

// Page routes a pattern to a registered page controller through the
// lifecycle coordinator: the outgoing controller is destroyed, the named
// one loads into the container, and stale navigations are suppressed.
// The controller receives the route params merged over the query values.
func (a *App) Page(pattern, name string) *App {
	a.table.AddRoute(pattern, func(c *router.Context) error {
		data := make(map[string]string, len(c.Query)+len(c.Params))
		for k, v := range c.Query {
			data[k] = v
		}
		for k, v := range c.Params {
			data[k] = v
		}
		return a.coordinator.Show(c.StdContext(), c.NavID(), name, data)
	})
	return a
}

// Use appends dispatcher middleware in registration order.
func (a *App) Use(mw ...router.Middleware) *App {
	a.dispatcher.Use(mw...)
	return a
}

// Start dispatches the current history entry — the initial page load.
func (a *App) Start() {
	a.navigator.Refresh()
}

// Navigate pushes (or replaces, via options) a history entry and
// dispatches it.
func (a *App) Navigate(path string, opts ...router.NavigateOption) error {
	return a.navigator.Navigate(path, opts...)
}

// Back moves the history back one entry.
func (a *App) Back() { a.navigator.Back() }

// Forward moves the history forward one entry.
func (a *App) Forward() { a.navigator.Forward() }

// Refresh re-dispatches the current location without touching history.
func (a *App) Refresh() { a.navigator.Refresh() }

// CurrentRoute returns the most recently dispatched route record.
func (a *App) CurrentRoute() *router.CurrentRoute {
	return a.dispatcher.Current()
}

// IsCurrentRoute reports whether the given path is the current one.
func (a *App) IsCurrentRoute(path string) bool {
	return a.dispatcher.IsCurrent(path)
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Navigator returns the navigation surface.
func (a *App) Navigator() *router.Navigator { return a.navigator }

// Dispatcher returns the dispatcher, mainly for OnChange listeners.
func (a *App) Dispatcher() *router.Dispatcher { return a.dispatcher }

// Table returns the route table.
func (a *App) Table() *router.Table { return a.table }

// Pages returns the page-controller registry.
func (a *App) Pages() *page.Registry { return a.pages }

// Container returns the render target.
func (a *App) Container() page.Container { return a.container }

// History returns the history stack.
func (a *App) History() history.History { return a.config.History }

// Close detaches the app from its history stack.
func (a *App) Close() { a.navigator.Close() }

// notFoundView renders the generic not-found message.
func notFoundView(path string) string {
	return fmt.Sprintf(
		`<section class="navio-not-found"><h1>Page not found</h1><p>No screen is registered for %s.</p></section>`,
		path)
}

// errorView renders the generic failure message with a retry hint. The
// host wires the retry control to Refresh().
func errorView(path string) string {
	return fmt.Sprintf(
		`<section class="navio-error"><h1>Something went wrong</h1><p>Loading %s failed.</p><button data-navio-retry>Retry</button></section>`,
		path)
}
