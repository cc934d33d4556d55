// Package metrics provides Prometheus metrics for the content service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "content_service",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "content_service",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// DBConnectionsTotal counts database connection attempts. Every request
	// opens its own connection, so this tracks the cost of that model.
	DBConnectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "content_service",
			Name:      "db_connections_total",
			Help:      "Total number of database connection attempts",
		},
		[]string{"status"},
	)

	// DBConnectionDuration measures how long connection establishment takes.
	DBConnectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "content_service",
			Name:      "db_connection_duration_seconds",
			Help:      "Duration of database connection establishment in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// RecordHTTPRequest records a handled HTTP request.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordDBConnection records a database connection attempt.
func RecordDBConnection(status string, duration time.Duration) {
	DBConnectionsTotal.WithLabelValues(status).Inc()
	DBConnectionDuration.Observe(duration.Seconds())
}
