// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

/*
Package middleware provides chi-compatible HTTP middleware.

Key Components:

  - RequestID: reuses or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern
  - PerformanceMonitor: sliding window of recent requests with per-route
    percentiles, served by the stats endpoint
  - Compression: lazy gzip for clients that accept it

Every middleware has the func(http.Handler) http.Handler shape:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perf.Middleware)
	r.Use(middleware.Compression)

The response wrappers pass Hijack through, so the WebSocket endpoint can sit
behind the same stack.
*/
package middleware
