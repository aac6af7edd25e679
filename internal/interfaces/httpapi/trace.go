package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName        = "league-ranking/internal/interfaces/httpapi"
	serverSpanName    = "league-ranking-http"
	handlerSpanPrefix = "httpapi.Handler."
)

var noopSpan = trace.SpanFromContext(context.Background())

// Health checks are polled constantly and never traced.
var untracedPaths = map[string]struct{}{
	"/healthz": {},
	"/health":  {},
	"/livez":   {},
	"/readyz":  {},
}

// traceRequests opens one server span per request on provider.
func traceRequests(next http.Handler, provider trace.TracerProvider) http.Handler {
	return otelhttp.NewHandler(next, serverSpanName,
		otelhttp.WithTracerProvider(provider),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return tracedPath(r.URL.Path)
		}),
	)
}

func tracedPath(path string) bool {
	_, skip := untracedPaths[strings.ToLower(strings.TrimSpace(path))]
	return !skip
}

// nameRouteSpan renames the server span after the matched route pattern so
// every player id or leaderboard kind shares one span name.
func nameRouteSpan(r *http.Request) {
	if r.Pattern == "" {
		return
	}
	span := trace.SpanFromContext(r.Context())
	if !span.IsRecording() {
		return
	}
	span.SetName(r.Pattern)
	span.SetAttributes(attribute.String("http.route", r.Pattern))
}

// startSpan opens a child span for handlers only, on the provider of the
// request span. Requests that were not traced get a no-op span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !strings.HasPrefix(name, handlerSpanPrefix) {
		return ctx, noopSpan
	}
	return parent.TracerProvider().Tracer(tracerName).Start(ctx, name)
}
