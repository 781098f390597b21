// Package middleware provides observability middleware for the
// dispatcher: Prometheus dispatch metrics, OpenTelemetry spans and
// structured request logging.
//
// All middleware here is pass-through: it never vetoes a navigation and
// forwards whatever error the chain below produced.
package middleware
