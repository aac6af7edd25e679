package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-ranking/internal/platform/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	accessCode string,
) http.Handler {
	return newRouter(handler, logger, corsAllowedOrigins, accessCode, otel.GetTracerProvider())
}

func newRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	accessCode string,
	provider trace.TracerProvider,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerStatsRoutes(mux, handler, accessCode)

	return traceRequests(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))), provider)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
