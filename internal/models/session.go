// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package models

import "time"

// SessionView is the derived state of one explorer session.
type SessionView struct {
	ID              string       `json:"id"`
	Selection       []GraphNode  `json:"selection"`
	Recommendations []string     `json:"recommendations"`
	Recipes         []RecipeView `json:"recipes"`
	LastClicked     string       `json:"last_clicked,omitempty"`
	Nutrition       *FoodRecord  `json:"nutrition,omitempty"`
	Emphasis        Emphasis     `json:"emphasis"`
	Version         uint64       `json:"version"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// ToggleRequest toggles a graph node in a session selection.
type ToggleRequest struct {
	NodeID string `json:"node_id" validate:"required,nodeid,max=200"`
}

// RecommendedRequest toggles the node of a recommended ingredient.
type RecommendedRequest struct {
	Ingredient string `json:"ingredient" validate:"required,ingredient,max=200"`
}

// RecipeSearchRequest replaces a selection with a recipe's ingredients.
type RecipeSearchRequest struct {
	Title string `json:"title" validate:"required,max=500"`
}

// RecipeSearchResult reports whether the title matched a recipe.
type RecipeSearchResult struct {
	Matched bool        `json:"matched"`
	View    SessionView `json:"view"`
}

// ScoredIngredient is a recommendation with its aggregate pairing score.
type ScoredIngredient struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
