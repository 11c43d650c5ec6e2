// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Watcher metrics track the polling loops that monitor sources
var (
	// WatcherChecksTotal counts source checks by outcome.
	// result: success, failure, skipped (single-flight guard hit)
	WatcherChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watcher_checks_total",
			Help: "Total number of source checks performed by watchers",
		},
		[]string{"source_id", "result"},
	)

	// WatcherCheckDuration measures time to complete one source check
	WatcherCheckDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watcher_check_duration_seconds",
			Help:    "Time taken to complete one source check",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"source_id"},
	)

	// WatchersActive tracks the number of running watchers
	WatchersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "watchers_active",
			Help: "Number of currently running source watchers",
		},
	)

	// SourcesDisabledTotal counts sources auto-disabled after consecutive failures
	SourcesDisabledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sources_disabled_total",
			Help: "Total number of sources auto-disabled after consecutive check failures",
		},
	)
)

// Page pipeline metrics track ingestion and archiving
var (
	// PagesIngestedTotal counts pages ingested per source
	PagesIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pages_ingested_total",
			Help: "Total number of pages ingested",
		},
		[]string{"source_id"},
	)

	// PagesArchivedTotal counts pages copied into the archive store
	PagesArchivedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pages_archived_total",
			Help: "Total number of pages archived",
		},
	)

	// ImageCacheFailuresTotal counts preview images that could not be cached
	ImageCacheFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "image_cache_failures_total",
			Help: "Total number of preview images that failed to download or encode",
		},
	)
)

// Inventory gauges reflect database state, refreshed periodically
var (
	// SourcesTotal tracks total number of sources in the database
	SourcesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sources_total",
			Help: "Total number of sources in the database",
		},
	)

	// PagesTotal tracks pages per store (live or archive)
	PagesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pages_total",
			Help: "Total number of pages per store",
		},
		[]string{"store"}, // store: live, archive
	)
)

// Database metrics track database performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_pages", "insert_source").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
