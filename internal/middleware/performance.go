// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/maridaje/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which a request is logged.
const DefaultSlowRequestThreshold = time.Second

// RequestSample is one observed request.
type RequestSample struct {
	Route      string
	Method     string
	Duration   time.Duration
	StatusCode int
	Timestamp  time.Time
}

// EndpointStats contains aggregated statistics for one route.
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int64   `json:"request_count"`
	ErrorCount   int64   `json:"error_count"`
	AvgMS        float64 `json:"avg_ms"`
	P50MS        float64 `json:"p50_ms"`
	P95MS        float64 `json:"p95_ms"`
	P99MS        float64 `json:"p99_ms"`
	MaxMS        float64 `json:"max_ms"`
}

// PerformanceMonitor keeps a sliding window of recent requests and reports
// per-route latency percentiles.
type PerformanceMonitor struct {
	mu            sync.RWMutex
	samples       []RequestSample
	next          int
	full          bool
	slowThreshold time.Duration
	now           func() time.Time
}

// NewPerformanceMonitor creates a monitor holding up to window samples.
func NewPerformanceMonitor(window int) *PerformanceMonitor {
	if window <= 0 {
		window = 1000
	}
	return &PerformanceMonitor{
		samples:       make([]RequestSample, window),
		slowThreshold: DefaultSlowRequestThreshold,
		now:           time.Now,
	}
}

// SetSlowThreshold changes the slow request logging threshold.
func (pm *PerformanceMonitor) SetSlowThreshold(d time.Duration) {
	pm.mu.Lock()
	pm.slowThreshold = d
	pm.mu.Unlock()
}

// Record adds a sample, overwriting the oldest when the window is full.
func (pm *PerformanceMonitor) Record(s RequestSample) {
	pm.mu.Lock()
	pm.samples[pm.next] = s
	pm.next++
	if pm.next == len(pm.samples) {
		pm.next = 0
		pm.full = true
	}
	threshold := pm.slowThreshold
	pm.mu.Unlock()

	if threshold > 0 && s.Duration > threshold {
		logging.Warn().
			Str("method", s.Method).
			Str("route", s.Route).
			Dur("duration", s.Duration).
			Dur("threshold", threshold).
			Msg("Slow request detected")
	}
}

// Len returns the number of samples in the window.
func (pm *PerformanceMonitor) Len() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	if pm.full {
		return len(pm.samples)
	}
	return pm.next
}

// Stats aggregates the window per "METHOD route", busiest first.
func (pm *PerformanceMonitor) Stats() []EndpointStats {
	pm.mu.RLock()
	n := pm.next
	if pm.full {
		n = len(pm.samples)
	}
	grouped := make(map[string][]RequestSample)
	for _, s := range pm.samples[:n] {
		key := s.Method + " " + s.Route
		grouped[key] = append(grouped[key], s)
	}
	pm.mu.RUnlock()

	stats := make([]EndpointStats, 0, len(grouped))
	for endpoint, samples := range grouped {
		durations := make([]float64, len(samples))
		var sum float64
		var errs int64
		for i, s := range samples {
			ms := float64(s.Duration) / float64(time.Millisecond)
			durations[i] = ms
			sum += ms
			if s.StatusCode >= http.StatusInternalServerError {
				errs++
			}
		}
		sort.Float64s(durations)

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: int64(len(samples)),
			ErrorCount:   errs,
			AvgMS:        sum / float64(len(samples)),
			P50MS:        percentile(durations, 0.50),
			P95MS:        percentile(durations, 0.95),
			P99MS:        percentile(durations, 0.99),
			MaxMS:        durations[len(durations)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Endpoint < stats[j].Endpoint
	})
	return stats
}

// Middleware records every request served by next.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := pm.now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		pm.Record(RequestSample{
			Route:      RoutePattern(r),
			Method:     r.Method,
			Duration:   pm.now().Sub(start),
			StatusCode: rec.statusCode,
			Timestamp:  start,
		})
	})
}

// percentile calculates the percentile value from a sorted slice
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}
