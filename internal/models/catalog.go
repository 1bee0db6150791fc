// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package models

import (
	"net/url"
)

// PairingEntry is one co-occurrence row of the flat pairing table.
// Count is a float so TF-IDF weighted tables share the type.
type PairingEntry struct {
	Ing1  string  `json:"ing1"`
	Ing2  string  `json:"ing2"`
	Count float64 `json:"count"`
}

// Recipe is one scraped recipe.
type Recipe struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Ingredients []string `json:"ingredients"`
}

// Hostname returns the host part of the recipe URL, or "" if it does not parse.
func (r *Recipe) Hostname() string {
	u, err := url.Parse(r.URL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// HasAll reports whether the recipe lists every name in required.
// Matching is exact and order-independent.
func (r *Recipe) HasAll(required []string) bool {
	for _, name := range required {
		found := false
		for _, ing := range r.Ingredients {
			if ing == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// RecipeView is a recipe as returned to clients.
type RecipeView struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Hostname    string   `json:"hostname"`
	Ingredients []string `json:"ingredients"`
}

// NewRecipeView builds the client view of a recipe.
func NewRecipeView(r *Recipe) RecipeView {
	return RecipeView{
		Title:       r.Title,
		URL:         r.URL,
		Hostname:    r.Hostname(),
		Ingredients: r.Ingredients,
	}
}

// NutrientInfo names a nutrient and its unit.
type NutrientInfo struct {
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
}

// FoodNutrient is one nutrient amount of a food record.
type FoodNutrient struct {
	Nutrient NutrientInfo `json:"nutrient"`
	Amount   float64      `json:"amount"`
}

// FoodRecord is one entry of the USDA Foundation Foods table.
type FoodRecord struct {
	Description   string         `json:"description"`
	FoodNutrients []FoodNutrient `json:"foodNutrients"`
}

// FoodTable is the top-level USDA Foundation Foods document.
type FoodTable struct {
	FoundationFoods []FoodRecord `json:"FoundationFoods"`
}

// NutrientName is a unique nutrient listed across all foods.
type NutrientName struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// Classification is the category label and display color of an ingredient.
type Classification struct {
	Ingredient string `json:"ingredient"`
	Label      string `json:"label"`
	Color      string `json:"color"`
}
