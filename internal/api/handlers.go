// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/config"
	"github.com/tomtom215/maridaje/internal/explorer"
	"github.com/tomtom215/maridaje/internal/graph"
	"github.com/tomtom215/maridaje/internal/lookup"
	"github.com/tomtom215/maridaje/internal/middleware"
	"github.com/tomtom215/maridaje/internal/recommend"
	ws "github.com/tomtom215/maridaje/internal/websocket"
)

// Version is reported by the health endpoint. Set at build time with
// -ldflags "-X github.com/tomtom215/maridaje/internal/api.Version=...".
var Version = "dev"

// defaultRequestTimeout bounds handler work when the config leaves it unset.
const defaultRequestTimeout = 10 * time.Second

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: health and monitoring endpoints
//   - handlers_catalog.go: graph, lookups, recommendations and recipes
//   - handlers_sessions.go: explorer sessions and their WebSocket stream
type Handler struct {
	tables    *catalog.Tables
	view      *graph.View
	engine    *recommend.Engine
	lookup    *lookup.Service
	explorer  *explorer.Explorer
	wsHub     *ws.Hub
	perfMon   *middleware.PerformanceMonitor
	config    *config.Config
	startTime time.Time
}

// Deps are the services the handlers serve.
type Deps struct {
	Tables   *catalog.Tables
	View     *graph.View
	Engine   *recommend.Engine
	Lookup   *lookup.Service
	Explorer *explorer.Explorer
	Hub      *ws.Hub
}

// NewHandler creates a new API handler. cfg may be nil in tests; the hub may
// be nil, in which case the WebSocket endpoint answers 503.
func NewHandler(deps Deps, cfg *config.Config) *Handler {
	perfMon := middleware.NewPerformanceMonitor(1000)
	if cfg != nil {
		perfMon.SetSlowThreshold(cfg.Server.SlowRequestThreshold)
	}
	return &Handler{
		tables:    deps.Tables,
		view:      deps.View,
		engine:    deps.Engine,
		lookup:    deps.Lookup,
		explorer:  deps.Explorer,
		wsHub:     deps.Hub,
		perfMon:   perfMon,
		config:    cfg,
		startTime: time.Now(),
	}
}

// PerformanceMonitor returns the monitor fed by the router middleware.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

// withTimeout derives the per-request deadline from the server config.
func (h *Handler) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if h.config != nil && h.config.Server.Timeout > 0 {
		timeout = h.config.Server.Timeout
	}
	return context.WithTimeout(r.Context(), timeout)
}

// allowedOrigins returns the configured CORS origins.
func (h *Handler) allowedOrigins() []string {
	if h.config == nil {
		return nil
	}
	return h.config.Security.CORSOrigins
}
