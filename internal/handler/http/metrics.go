package http

import (
	"net/http"
	"strconv"
	"time"

	"content-hub/internal/handler/http/pathutil"
	"content-hub/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// httpRequestsInFlight tracks the current number of HTTP requests being
// processed. Helps identify load levels and request queuing.
var httpRequestsInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current number of HTTP requests being served",
	},
)

// responseWriter wraps http.ResponseWriter to record status code and response size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// MetricsMiddleware records HTTP request metrics including duration, size, and status codes.
// It uses path normalization to prevent label cardinality explosion from ID-containing paths.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		metrics.ActiveConnections.Inc()
		defer metrics.ActiveConnections.Dec()

		// Example: /articles/123 -> /articles/:id
		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		requestSize := 0
		if r.ContentLength > 0 {
			requestSize = int(r.ContentLength)
		}

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		start := time.Now()
		next.ServeHTTP(rw, r)
		duration := time.Since(start)

		status := strconv.Itoa(rw.statusCode)
		metrics.RecordHTTPRequest(r.Method, normalizedPath, status, duration, requestSize, rw.size)
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
