package adminapp

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/navio-dev/navio"
)

func newTestApp(t *testing.T) *navio.App {
	t.Helper()
	app := New(Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	t.Cleanup(app.Close)
	return app
}

func TestAdminNavigation(t *testing.T) {
	app := newTestApp(t)
	app.Start()

	if got := app.Container().Content(); !strings.Contains(got, "Dashboard") {
		t.Errorf("initial screen = %q, want dashboard", got)
	}

	if err := app.Navigate("/properties/42"); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	got := app.Container().Content()
	if !strings.Contains(got, "Old Mill Loft") {
		t.Errorf("property screen = %q, want Old Mill Loft", got)
	}
	if !app.IsCurrentRoute("/properties/42") {
		t.Error("IsCurrentRoute(/properties/42) = false")
	}
}

func TestAdminPropertyFilter(t *testing.T) {
	app := newTestApp(t)

	if err := app.Navigate("/properties?status=available"); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	got := app.Container().Content()
	if !strings.Contains(got, "Harbor View Apartment") {
		t.Errorf("filtered list = %q, missing available property", got)
	}
	if strings.Contains(got, "Old Mill Loft") {
		t.Errorf("filtered list = %q, sold property should be excluded", got)
	}
}

func TestAdminUnknownPropertyShowsErrorView(t *testing.T) {
	app := newTestApp(t)

	if err := app.Navigate("/properties/999"); err != nil {
		t.Fatalf("Navigate must not surface load errors, got %v", err)
	}
	if got := app.Container().Content(); !strings.Contains(got, "Something went wrong") {
		t.Errorf("screen = %q, want error view", got)
	}
}

func TestAdminUnmatchedPathFallsBack(t *testing.T) {
	app := newTestApp(t)

	app.Navigate("/no-such-screen")

	if got := app.CurrentRoute().Path(); got != "/dashboard" {
		t.Errorf("fallback landed on %q, want /dashboard", got)
	}
	if got := app.Container().Content(); !strings.Contains(got, "Dashboard") {
		t.Errorf("screen = %q, want dashboard", got)
	}
}

func TestAdminBackRestoresPreviousScreen(t *testing.T) {
	app := newTestApp(t)

	app.Navigate("/clients")
	app.Navigate("/agents")
	app.Back()

	if got := app.Container().Content(); !strings.Contains(got, "Clients") {
		t.Errorf("screen after back = %q, want clients", got)
	}
}
