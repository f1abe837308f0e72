package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"

	"blog-post-service/internal/logger"
	"blog-post-service/internal/metrics"
)

// RequestLogger logs every request with its resolved route pattern and feeds
// the HTTP metrics.
func RequestLogger(log *logger.Logger, metricsProvider metrics.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			path := r.URL.Path
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil && routeCtx.RoutePattern() != "" {
				path = routeCtx.RoutePattern()
			}

			duration := time.Since(start)
			status := ww.Status()
			statusLabel := strconv.Itoa(status)

			metricsProvider.IncrementHTTPRequests(r.Method, path, statusLabel)
			metricsProvider.RecordHTTPRequestDuration(r.Method, path, statusLabel, duration)

			log.Info("HTTP request",
				slog.String("method", r.Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Duration("duration", duration),
				slog.String("remote", r.RemoteAddr),
			)
		})
	}
}
