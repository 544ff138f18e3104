package middleware

import (
	"log/slog"
	"net/http"

	"github.com/petlink/petlink-api/internal/api/shared"
)

// TraceMiddleware adds a trace ID to the request context. Apply it first so
// every subsequent handler and log line can correlate on the same ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.Debug("request started",
			slog.String("trace_id", shared.GetTraceID(ctx)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
