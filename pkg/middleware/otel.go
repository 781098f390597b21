package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/navio-dev/navio/pkg/router"
)

const defaultTracerName = "navio"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "navio").
	TracerName string

	// IncludeQuery includes query-string keys in span attributes.
	// Values may be sensitive, so only key names are recorded.
	IncludeQuery bool

	// Filter determines which navigations to trace. Return true to
	// trace. If nil, every navigation is traced.
	Filter func(ctx *router.Context) bool

	// AttributeExtractor extracts custom attributes per navigation.
	AttributeExtractor func(ctx *router.Context) []attribute.KeyValue

	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) { c.TracerName = name }
}

// WithIncludeQuery enables recording query-string key names.
func WithIncludeQuery(include bool) OTelOption {
	return func(c *OTelConfig) { c.IncludeQuery = include }
}

// WithNavigationFilter sets a filter for which navigations are traced.
func WithNavigationFilter(filter func(ctx *router.Context) bool) OTelOption {
	return func(c *OTelConfig) { c.Filter = filter }
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ctx *router.Context) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) { c.AttributeExtractor = extractor }
}

// OpenTelemetry creates middleware that opens a span per dispatch.
//
// The span covers the rest of the middleware chain plus the handler;
// errors mark the span and set its status. The span context is stored on
// the navigation context so handlers can propagate it to backend calls
// via TraceContext.
//
// The tracer comes from the global provider; configure it in main()
// before the first navigation.
func OpenTelemetry(opts ...OTelOption) router.Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return router.MiddlewareFunc(func(ctx *router.Context, next func() error) error {
		if config.Filter != nil && !config.Filter(ctx) {
			return next()
		}

		attrs := []attribute.KeyValue{
			attribute.String("navio.path", ctx.Path),
			attribute.Int64("navio.nav_id", int64(ctx.NavID())),
		}
		if config.IncludeQuery {
			keys := make([]string, 0, len(ctx.Query))
			for k := range ctx.Query {
				keys = append(keys, k)
			}
			attrs = append(attrs, attribute.StringSlice("navio.query_keys", keys))
		}
		if config.AttributeExtractor != nil {
			attrs = append(attrs, config.AttributeExtractor(ctx)...)
		}

		spanCtx, span := config.tracer.Start(
			ctx.StdContext(),
			fmt.Sprintf("navigate %s", ctx.Path),
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
			trace.WithTimestamp(time.Now()),
		)
		defer span.End()

		ctx.SetValue(spanContextKey{}, spanCtx)

		err := next()

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.SetAttributes(attribute.Int("navio.param_count", len(ctx.Params)))

		return err
	})
}

type spanContextKey struct{}

// SpanFromContext retrieves the dispatch span from a navigation
// context, or nil when tracing is not active.
func SpanFromContext(ctx *router.Context) trace.Span {
	if spanCtx, ok := ctx.Value(spanContextKey{}).(context.Context); ok {
		return trace.SpanFromContext(spanCtx)
	}
	return nil
}

// TraceContext returns the context carrying the dispatch span, for
// propagation into backend calls made by handlers.
func TraceContext(ctx *router.Context) context.Context {
	if spanCtx, ok := ctx.Value(spanContextKey{}).(context.Context); ok {
		return spanCtx
	}
	return ctx.StdContext()
}
