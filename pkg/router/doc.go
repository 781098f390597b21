// Package router is the navigation core: the route table, the
// dispatcher and the navigation controller.
//
// The Table maps path templates like "/properties/:id" onto handlers,
// first registration winning when patterns overlap. The Dispatcher turns
// a location into a page load: parse, middleware chain, table lookup,
// handler — with a not-found fallback to the default landing path and an
// error policy that keeps routing failures from ever crashing the host.
// The Navigator is the user-facing surface: Navigate, Back, Forward,
// Refresh and click interception, wired over a history stack.
//
// A minimal setup:
//
//	table := router.NewTable()
//	table.AddRoute("/dashboard", showDashboard).
//	      AddRoute("/properties/:id", showProperty)
//
//	d := router.NewDispatcher(table, router.WithDefaultPath("/dashboard"))
//	nav := router.NewNavigator(history.NewMemory("/"), d)
//
//	nav.Navigate("/properties/42")
//
// Every navigation carries a monotonically increasing id. CurrentRoute
// is last-write-wins on that id, and the std context of a superseded
// navigation is cancelled, so rapid double-navigation settles on the
// latest target no matter how slow the earlier handler is.
package router
