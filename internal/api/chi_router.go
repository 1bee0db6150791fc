// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/maridaje/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware config uses the defaults.
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)
	r.Use(h.perfMon.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitHealth))
		r.Use(APISecurityHeaders())
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		// Read-only catalog endpoints.
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(middleware.Compression)

			r.Get("/graph", h.Graph)
			r.Get("/ingredients", h.Ingredients)
			r.Get("/recommendations", h.Recommendations)
			r.Get("/recipes", h.Recipes)
			r.Get("/recipes/search", h.RecipeSearch)
			r.Get("/nutrition/{ingredient}", h.Nutrition)
			r.Get("/nutrients", h.Nutrients)
			r.Get("/classification/{ingredient}", h.Classification)
			r.Get("/stats/performance", h.PerformanceStats)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.With(router.chiMiddleware.RateLimitCustom(RateLimitWebSocket)).
				Get("/{id}/ws", h.SessionWebSocket)

			r.Group(func(r chi.Router) {
				r.Use(router.chiMiddleware.RateLimitCustom(RateLimitSessionWrite))
				r.Post("/", h.CreateSession)
				r.Get("/{id}", h.GetSession)
				r.Delete("/{id}", h.DeleteSession)
				r.Post("/{id}/toggle", h.ToggleNode)
				r.Post("/{id}/recommended", h.ToggleRecommended)
				r.Put("/{id}/recipe", h.SelectRecipe)
			})
		})
	})

	return r
}
