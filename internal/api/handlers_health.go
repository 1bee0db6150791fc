// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/maridaje/internal/models"
)

// Health reports catalog sizes, live sessions and layout state.
//
// Status is "healthy" once the graph layout has converged and "starting"
// before that. The endpoint always answers 200; use /health/ready for probes.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ready := h.view != nil && h.view.Ready()
	status := "healthy"
	if !ready {
		status = "starting"
	}

	health := models.HealthStatus{
		Status:      status,
		Version:     Version,
		LayoutReady: ready,
		Uptime:      time.Since(h.startTime).Seconds(),
		Timestamp:   time.Now(),
	}
	if h.tables != nil {
		health.Ingredients = len(h.tables.Ingredients())
		health.Recipes = len(h.tables.Recipes())
	}
	if h.explorer != nil {
		health.Sessions = h.explorer.Len()
	}

	respondNoStore(w, http.StatusOK, success(health, start))
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondNoStore(w, http.StatusOK, success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Now()))
}

// HealthReady answers 200 once the tables are loaded and the layout has
// converged, 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.tables == nil || h.view == nil || !h.view.Ready() {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Graph layout not ready", nil)
		return
	}
	respondNoStore(w, http.StatusOK, success(map[string]interface{}{
		"ready": true,
	}, time.Now()))
}

// PerformanceStats returns per-route latency percentiles of recent requests.
func (h *Handler) PerformanceStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := h.perfMon.Stats()
	respondNoStore(w, http.StatusOK, successCount(stats, len(stats), start))
}
