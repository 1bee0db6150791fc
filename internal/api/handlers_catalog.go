// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/maridaje/internal/models"
)

const defaultSearchLimit = 10

// Graph returns the nodes, edges and converged layout positions.
//
// The first call after startup may trigger the layout. If it does not finish
// within the request timeout the client gets 503 and can retry; the layout
// keeps running in the background.
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	done := make(chan struct{})
	go func() {
		h.view.Init()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			respondError(w, http.StatusServiceUnavailable, ErrCodeTimeout, "Graph layout still running", nil)
		}
		return
	}

	respondJSON(w, r, http.StatusOK, success(h.view.Payload(), start))
}

// Ingredients autocompletes ingredient names by prefix.
func (h *Handler) Ingredients(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := SearchRequest{
		Prefix: r.URL.Query().Get("prefix"),
		Limit:  getIntParam(r, "limit", defaultSearchLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	names := h.tables.SearchIngredients(req.Prefix, req.Limit)
	respondJSON(w, r, http.StatusOK, successCount(names, len(names), start))
}

// Recommendations suggests partners for a comma-separated ingredient list.
// With verbose=true each suggestion carries its aggregate pairing score.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := RecommendationsRequest{
		Ingredients: parseCommaSeparated(r.URL.Query().Get("ingredients")),
		Limit:       getIntParam(r, "limit", h.engine.Limit()),
		Verbose:     getBoolParam(r, "verbose"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	scored := h.engine.RecommendScored(req.Ingredients, req.Limit)
	if req.Verbose {
		respondJSON(w, r, http.StatusOK, successCount(scored, len(scored), start))
		return
	}

	names := make([]string, len(scored))
	for i, s := range scored {
		names[i] = s.Name
	}
	respondJSON(w, r, http.StatusOK, successCount(names, len(names), start))
}

// Recipes samples recipes containing every listed ingredient. Samples are
// random, so the response is not cacheable.
func (h *Handler) Recipes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := RecipesRequest{
		Ingredients: parseCommaSeparated(r.URL.Query().Get("ingredients")),
		Qty:         getIntParam(r, "qty", h.engine.RecipeQuantity()),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	recipes := h.engine.FindRecipes(req.Ingredients, req.Qty)
	views := make([]models.RecipeView, len(recipes))
	for i := range recipes {
		views[i] = models.NewRecipeView(&recipes[i])
	}
	respondNoStore(w, http.StatusOK, successCount(views, len(views), start))
}

// RecipeSearch autocompletes recipe titles by prefix.
func (h *Handler) RecipeSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := SearchRequest{
		Prefix: r.URL.Query().Get("q"),
		Limit:  getIntParam(r, "limit", defaultSearchLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	recipes := h.tables.SearchRecipeTitles(req.Prefix, req.Limit)
	views := make([]models.RecipeView, len(recipes))
	for i := range recipes {
		views[i] = models.NewRecipeView(&recipes[i])
	}
	respondJSON(w, r, http.StatusOK, successCount(views, len(views), start))
}

// Nutrition returns the USDA record of an ingredient.
func (h *Handler) Nutrition(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name, ok := ingredientParam(w, r)
	if !ok {
		return
	}

	record, found := h.lookup.Nutrition(name)
	if !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "No nutrition data for ingredient", nil)
		return
	}
	respondJSON(w, r, http.StatusOK, success(record, start))
}

// Nutrients lists every nutrient name with its unit.
func (h *Handler) Nutrients(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	names := h.lookup.AllNutrientNames()
	respondJSON(w, r, http.StatusOK, successCount(names, len(names), start))
}

// Classification returns the category label and color of an ingredient.
func (h *Handler) Classification(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name, ok := ingredientParam(w, r)
	if !ok {
		return
	}

	class, found := h.lookup.Classify(name)
	if !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Ingredient has no classification", nil)
		return
	}
	respondJSON(w, r, http.StatusOK, success(class, start))
}

// ingredientParam reads and validates the {ingredient} path parameter.
func ingredientParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	req := IngredientPathRequest{Ingredient: chi.URLParam(r, "ingredient")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return "", false
	}
	return req.Ingredient, true
}
