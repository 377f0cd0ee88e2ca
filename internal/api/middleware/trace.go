package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/teachkit/internal/api/shared"
	"github.com/phrazzld/teachkit/internal/platform/logger"
)

// TraceHeader carries the trace ID back to the client.
const TraceHeader = "X-Trace-ID"

// TraceMiddleware adds a trace ID to the request context and to the logging
// attributes of that context, so every ...Context log line of the request is
// correlated. Apply it before any handler that logs or writes errors.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)
		ctx = logger.WithAttrs(ctx, slog.String("trace_id", traceID))

		w.Header().Set(TraceHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
