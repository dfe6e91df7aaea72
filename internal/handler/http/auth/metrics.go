package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authRequestsTotal counts authentication requests by operation and result.
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total authentication requests by operation and result",
		},
		[]string{"operation", "result"}, // operation: register | token; result: success | failure
	)

	// authDuration tracks authentication duration by operation.
	authDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Authentication duration by operation",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"operation"},
	)
)

// RecordAuthRequest records an authentication request.
func RecordAuthRequest(operation, result string) {
	authRequestsTotal.WithLabelValues(operation, result).Inc()
}

// RecordAuthDuration records authentication duration.
func RecordAuthDuration(operation string, durationSeconds float64) {
	authDuration.WithLabelValues(operation).Observe(durationSeconds)
}
