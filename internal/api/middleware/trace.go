package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/nursenote-api/internal/api/shared"
	"github.com/phrazzld/nursenote-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and response
// headers, and stores a logger carrying it for downstream handlers.
// It should be applied early in the middleware chain so that every later
// handler and error response shares the same ID.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
