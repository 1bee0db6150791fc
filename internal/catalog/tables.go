// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package catalog

import (
	"strings"

	"github.com/tomtom215/maridaje/internal/cache"
	"github.com/tomtom215/maridaje/internal/models"
)

// Source is the raw content of the static tables.
type Source struct {
	Pairs          []models.PairingEntry
	Matrix         *Matrix // optional; built from Pairs when nil
	Recipes        []models.Recipe
	NutritionIndex [][]string // [ingredient, ..., description]
	Foods          []models.FoodRecord
	Labels         [][]string // [ingredient, label, ...]
}

// Tables is the read-only view of all static tables.
type Tables struct {
	pairs   []models.PairingEntry
	matrix  *Matrix
	recipes []models.Recipe
	foods   []models.FoodRecord

	descriptions map[string]string
	labels       map[string]string
	names        []string
	mentions     map[string]int

	ingredientTrie *cache.Trie[string]
	recipeTrie     *cache.Trie[int]
	titles         map[string]int
}

// New indexes src. Rows of the lookup tables are matched on their first
// element; when an ingredient appears more than once the first row wins.
func New(src Source) *Tables {
	t := &Tables{
		pairs:          src.Pairs,
		matrix:         src.Matrix,
		recipes:        src.Recipes,
		foods:          src.Foods,
		descriptions:   make(map[string]string, len(src.NutritionIndex)),
		labels:         make(map[string]string, len(src.Labels)),
		mentions:       make(map[string]int),
		ingredientTrie: cache.NewTrie[string](10),
		recipeTrie:     cache.NewTrie[int](10),
		titles:         make(map[string]int, len(src.Recipes)),
	}
	if t.matrix == nil {
		t.matrix = BuildMatrix(src.Pairs)
	}

	for _, row := range src.NutritionIndex {
		if len(row) == 0 {
			continue
		}
		if _, ok := t.descriptions[row[0]]; !ok {
			t.descriptions[row[0]] = row[len(row)-1]
		}
	}

	for _, row := range src.Labels {
		if len(row) < 2 {
			continue
		}
		if _, ok := t.labels[row[0]]; !ok {
			t.labels[row[0]] = row[1]
		}
	}

	for _, p := range src.Pairs {
		for _, name := range [2]string{p.Ing1, p.Ing2} {
			if _, seen := t.mentions[name]; !seen {
				t.names = append(t.names, name)
			}
			t.mentions[name]++
		}
	}
	for _, name := range t.names {
		t.ingredientTrie.Insert(name, name, float64(t.mentions[name]))
	}

	for i := range src.Recipes {
		title := src.Recipes[i].Title
		if _, ok := t.titles[title]; !ok {
			t.titles[title] = i
		}
		t.recipeTrie.Insert(title, i, 0)
	}
	return t
}

// Pairs returns the flat pairing list in file order.
func (t *Tables) Pairs() []models.PairingEntry { return t.pairs }

// Matrix returns the recommendation matrix.
func (t *Tables) Matrix() *Matrix { return t.matrix }

// Recipes returns every recipe in file order.
func (t *Tables) Recipes() []models.Recipe { return t.recipes }

// Foods returns the USDA records in file order.
func (t *Tables) Foods() []models.FoodRecord { return t.foods }

// Ingredients returns the distinct names of the pairing list in first-appearance order.
func (t *Tables) Ingredients() []string { return t.names }

// Mentions returns how many pairing entries name the ingredient.
func (t *Tables) Mentions(name string) int { return t.mentions[name] }

// Description returns the canonical USDA description for an ingredient.
func (t *Tables) Description(ingredient string) (string, bool) {
	d, ok := t.descriptions[ingredient]
	return d, ok
}

// Label returns the category label for an ingredient.
func (t *Tables) Label(ingredient string) (string, bool) {
	l, ok := t.labels[ingredient]
	return l, ok
}

// RecipeByTitle returns the first recipe whose title equals title exactly.
func (t *Tables) RecipeByTitle(title string) (*models.Recipe, bool) {
	i, ok := t.titles[title]
	if !ok {
		return nil, false
	}
	return &t.recipes[i], true
}

// SearchIngredients autocompletes ingredient names, most-paired first.
func (t *Tables) SearchIngredients(prefix string, limit int) []string {
	results := t.ingredientTrie.Autocomplete(prefix, limit)
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Data
	}
	return out
}

// SearchRecipeTitles autocompletes recipe titles in file order.
func (t *Tables) SearchRecipeTitles(prefix string, limit int) []models.Recipe {
	if strings.TrimSpace(prefix) == "" {
		return nil
	}
	results := t.recipeTrie.Autocomplete(prefix, limit)
	out := make([]models.Recipe, len(results))
	for i, r := range results {
		out[i] = t.recipes[r.Data]
	}
	return out
}

// Slugify turns an ingredient name into a graph node id.
func Slugify(name string) string {
	return strings.ReplaceAll(name, " ", "-")
}
