// Package navio is a navigation core for single-page applications: a
// route table with ":param" templates, a dispatcher with a middleware
// chain and not-found/error policies, a history abstraction with
// back/forward traversal, and a page-controller registry whose lifecycle
// coordinator swaps screens as navigation happens.
//
// The core runs wherever the host does; a thin browser client forwards
// clicks and popstate over the bridge (pkg/bridge) and renders whatever
// the active page controller produced.
package navio
