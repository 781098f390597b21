package middleware

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/navio-dev/navio/pkg/router"
)

// MetricsConfig configures the Prometheus dispatch metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "navio").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for dispatch duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "navio",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for the dispatcher.
type metrics struct {
	navigationsTotal *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	navigationErrors *prometheus.CounterVec
	activeClients    prometheus.Gauge
}

// Created on first call to Prometheus().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		navigationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of navigations dispatched",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "status"}),

		dispatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatch_duration_seconds",
			Help:        "Dispatch duration in seconds, middleware and handler included",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		navigationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_errors_total",
			Help:        "Total number of navigation handler errors",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "error_type"}),

		activeClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_clients",
			Help:        "Number of connected bridge clients",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Prometheus creates middleware that times and counts every dispatch.
//
// Metrics collected:
//   - navio_navigations_total: counter of dispatches by path and status
//   - navio_dispatch_duration_seconds: histogram of dispatch duration
//   - navio_navigation_errors_total: counter of errors by path and type
//   - navio_active_clients: gauge of connected bridge clients
//
// Example:
//
//	d.Use(middleware.Prometheus(middleware.WithNamespace("admin")))
//	mux.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) router.Middleware {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return router.MiddlewareFunc(func(ctx *router.Context, next func() error) error {
		path := ctx.Path
		if path == "" {
			path = "/"
		}

		start := time.Now()
		err := next()
		m.dispatchDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

		status := "success"
		if err != nil {
			status = "error"
			m.navigationErrors.WithLabelValues(path, categorizeError(err)).Inc()
		}
		m.navigationsTotal.WithLabelValues(path, status).Inc()

		return err
	})
}

// categorizeError buckets errors into a bounded label set so error
// messages cannot blow up metric cardinality.
func categorizeError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return "timeout"
	case strings.Contains(msg, "canceled"), strings.Contains(msg, "cancelled"):
		return "canceled"
	case strings.Contains(msg, "not found"), strings.Contains(msg, "unknown page"):
		return "not_found"
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "forbidden"):
		return "denied"
	default:
		return "internal"
	}
}

// RecordClientConnect records a bridge client connecting.
func RecordClientConnect() {
	if globalMetrics != nil {
		globalMetrics.activeClients.Inc()
	}
}

// RecordClientDisconnect records a bridge client disconnecting.
func RecordClientDisconnect() {
	if globalMetrics != nil {
		globalMetrics.activeClients.Dec()
	}
}

// Collector exposes the dispatch metrics for custom registration and
// assertions.
type Collector struct {
	NavigationsTotal *prometheus.CounterVec
	DispatchDuration *prometheus.HistogramVec
	NavigationErrors *prometheus.CounterVec
	ActiveClients    prometheus.Gauge
}

// GetMetrics returns the global metrics collector, or nil before the
// Prometheus middleware has been initialized.
func GetMetrics() *Collector {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		return nil
	}
	return &Collector{
		NavigationsTotal: globalMetrics.navigationsTotal,
		DispatchDuration: globalMetrics.dispatchDuration,
		NavigationErrors: globalMetrics.navigationErrors,
		ActiveClients:    globalMetrics.activeClients,
	}
}
