package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/propchart-api/internal/platform/id"
	"github.com/riskibarqy/propchart-api/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	requestTimeout time.Duration,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerSportRoutes(mux, handler)

	inner := CORS(corsAllowedOrigins, recoverPanic(logger, RequestTimeout(requestTimeout, mux)))
	return RequestTracing(RequestID(id.NewUUIDGenerator(), RequestLogging(logger, inner)))
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
