// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package api

// Query parameter structs validated with go-playground/validator before the
// handler touches the catalog. Request bodies live in models.

// RecommendationsRequest holds the parameters of GET /recommendations.
type RecommendationsRequest struct {
	Ingredients []string `json:"ingredients" validate:"max=50,dive,ingredient,max=200"`
	Limit       int      `json:"limit" validate:"min=1,max=100"`
	Verbose     bool     `json:"verbose"`
}

// RecipesRequest holds the parameters of GET /recipes.
type RecipesRequest struct {
	Ingredients []string `json:"ingredients" validate:"max=50,dive,ingredient,max=200"`
	Qty         int      `json:"qty" validate:"min=1,max=100"`
}

// SearchRequest holds the parameters of the autocomplete endpoints. An empty
// prefix lists entries in order.
type SearchRequest struct {
	Prefix string `json:"prefix" validate:"max=200"`
	Limit  int    `json:"limit" validate:"min=1,max=100"`
}

// IngredientPathRequest validates an ingredient taken from the URL path.
type IngredientPathRequest struct {
	Ingredient string `json:"ingredient" validate:"required,ingredient,max=200"`
}

// SessionPathRequest validates a session id taken from the URL path.
type SessionPathRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}
