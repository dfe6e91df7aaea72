// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Business metrics (interactions, summaries, registrations)
//   - Database query metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "content-hub/internal/observability/metrics"
//
//	func recordLike() {
//	    metrics.RecordInteraction("like")
//	}
package metrics
