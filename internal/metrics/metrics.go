// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Catalog table sizes
// - Recommendation and recipe lookups
// - Explorer sessions and WebSocket connections
// - Graph layout convergence
// - Pipeline fetching and circuit breakers

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Catalog Metrics
	CatalogTableSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_table_entries",
			Help: "Number of entries loaded per static table",
		},
		[]string{"table"},
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Time spent loading the static tables",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Lookup Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation computations",
		},
		[]string{"result"}, // "hit", "empty"
	)

	RecipeMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipe_matches",
			Help:    "Number of recipes containing the required ingredient set",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookups_total",
			Help: "Nutrition and classification lookups by outcome",
		},
		[]string{"kind", "result"}, // kind: "nutrition", "classification"; result: "exact", "fallback", "hit", "miss"
	)

	// Explorer Session Metrics
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "explorer_sessions_active",
			Help: "Current number of live explorer sessions",
		},
	)

	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explorer_session_transitions_total",
			Help: "Selection changes by kind",
		},
		[]string{"kind"}, // "add", "remove", "recipe", "rejected"
	)

	SessionsEvicted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explorer_sessions_evicted_total",
			Help: "Sessions removed from the store by reason",
		},
		[]string{"reason"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Layout Metrics
	LayoutTicks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "graph_layout_ticks",
			Help: "Simulation ticks used by the last layout run",
		},
	)

	LayoutDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "graph_layout_duration_seconds",
			Help: "Wall time of the last layout run",
		},
	)

	// Pipeline Metrics
	PipelinePagesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_pages_fetched_total",
			Help: "Pages fetched by the scraper",
		},
		[]string{"source", "result"}, // result: "stored", "skipped", "invalid", "error"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation counts one recommendation computation.
func RecordRecommendation(results int) {
	if results == 0 {
		RecommendationsTotal.WithLabelValues("empty").Inc()
		return
	}
	RecommendationsTotal.WithLabelValues("hit").Inc()
}

// RecordLayout records the outcome of a layout run.
func RecordLayout(ticks int, duration time.Duration) {
	LayoutTicks.Set(float64(ticks))
	LayoutDuration.Set(duration.Seconds())
}
