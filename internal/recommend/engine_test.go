// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package recommend

import (
	"fmt"
	"io"
	"math/rand"
	"reflect"
	"testing"

	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/logging"
	"github.com/tomtom215/maridaje/internal/models"
)

func newTestEngine(t *testing.T, matrixJSON string, recipes []models.Recipe, seed int64) *Engine {
	t.Helper()
	src := catalog.Source{Recipes: recipes}
	if matrixJSON != "" {
		pairs, m, err := catalog.DecodePairingTable([]byte(matrixJSON))
		if err != nil {
			t.Fatalf("DecodePairingTable() error = %v", err)
		}
		src.Pairs = pairs
		src.Matrix = m
	}
	return NewEngineWithRand(catalog.New(src), Config{}, logging.NewTestLogger(io.Discard), rand.New(rand.NewSource(seed)))
}

const exampleMatrix = `{"carne": {"ajo": 5, "cebolla": 2}, "ajo": {"carne": 5, "limon": 1}}`

func TestRecommend(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, exampleMatrix, nil, 1)

	tests := []struct {
		name     string
		selected []string
		want     []string
	}{
		{"example selection", []string{"carne", "ajo"}, []string{"cebolla", "limon"}},
		{"single ingredient", []string{"carne"}, []string{"ajo", "cebolla"}},
		{"empty selection", nil, []string{}},
		{"unknown ingredient", []string{"quinoa"}, []string{}},
		{"unknown contributes nothing", []string{"quinoa", "ajo"}, []string{"carne", "limon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := e.Recommend(tt.selected)
			if got == nil {
				t.Fatal("Recommend() returned nil, want empty slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recommend(%v) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestRecommendScored_AggregatesAndLimits(t *testing.T) {
	t.Parallel()

	matrix := `{
		"a": {"x": 1, "y": 4, "z": 2, "w": 2},
		"b": {"x": 4, "v": 1}
	}`
	e := newTestEngine(t, matrix, nil, 1)

	got := e.RecommendScored([]string{"a", "b"}, 0)
	want := []models.ScoredIngredient{
		{Name: "x", Score: 5},
		{Name: "y", Score: 4},
		{Name: "z", Score: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RecommendScored() = %+v, want %+v", got, want)
	}

	all := e.RecommendScored([]string{"a", "b"}, 10)
	if len(all) != 5 {
		t.Fatalf("len = %d, want 5", len(all))
	}
	// z and w tie on 2; z comes first in a's row.
	if all[2].Name != "z" || all[3].Name != "w" {
		t.Errorf("tie order = %s,%s, want z,w", all[2].Name, all[3].Name)
	}
	for i := 1; i < len(all); i++ {
		if all[i].Score > all[i-1].Score {
			t.Errorf("scores not non-increasing at %d: %+v", i, all)
		}
	}
}

func TestRecommend_NeverReturnsSelected(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, `{"a": {"b": 9, "c": 1}, "b": {"a": 9, "c": 3}, "c": {"a": 1, "b": 3}}`, nil, 1)
	for _, sel := range [][]string{{"a"}, {"a", "b"}, {"c", "b"}, {"a", "b", "c"}} {
		got := e.Recommend(sel)
		if len(got) > DefaultLimit {
			t.Errorf("Recommend(%v) returned %d names, want <= %d", sel, len(got), DefaultLimit)
		}
		for _, name := range got {
			for _, s := range sel {
				if name == s {
					t.Errorf("Recommend(%v) contains selected %q", sel, name)
				}
			}
		}
	}
}

func sampleRecipes() []models.Recipe {
	recipes := []models.Recipe{
		{Title: "A", Ingredients: []string{"carne", "ajo"}},
		{Title: "B", Ingredients: []string{"carne"}},
	}
	for i := 0; i < 8; i++ {
		recipes = append(recipes, models.Recipe{
			Title:       fmt.Sprintf("Guiso %d", i),
			Ingredients: []string{"papa", "carne", "ajo", "cebolla"},
		})
	}
	return recipes
}

func TestFindRecipes_Superset(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "", []models.Recipe{
		{Title: "A", Ingredients: []string{"carne", "ajo"}},
		{Title: "B", Ingredients: []string{"carne"}},
	}, 7)

	got := e.FindRecipes([]string{"carne", "ajo"}, 3)
	if len(got) != 1 || got[0].Title != "A" {
		t.Errorf("FindRecipes([carne ajo]) = %+v, want only A", got)
	}

	none := e.FindRecipes([]string{"chocolate"}, 3)
	if none == nil || len(none) != 0 {
		t.Errorf("FindRecipes(chocolate) = %#v, want empty slice", none)
	}
}

func TestFindRecipes_SampleSize(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "", sampleRecipes(), 7)

	tests := []struct {
		name     string
		required []string
		qty      int
		want     int
	}{
		{"default quantity", []string{"carne"}, 0, DefaultRecipeQuantity},
		{"negative quantity", []string{"carne"}, -4, DefaultRecipeQuantity},
		{"explicit quantity", []string{"carne", "ajo"}, 5, 5},
		{"fewer matches than qty", []string{"papa"}, 20, 8},
		{"empty requirement matches all", nil, 100, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.FindRecipes(tt.required, tt.qty)
			if len(got) != tt.want {
				t.Fatalf("len(FindRecipes) = %d, want %d", len(got), tt.want)
			}
			seen := make(map[string]bool)
			for i := range got {
				if !got[i].HasAll(tt.required) {
					t.Errorf("recipe %q lacks %v", got[i].Title, tt.required)
				}
				if seen[got[i].Title] {
					t.Errorf("recipe %q sampled twice", got[i].Title)
				}
				seen[got[i].Title] = true
			}
		})
	}
}

func TestFindRecipes_FixedSeedIsDeterministic(t *testing.T) {
	t.Parallel()

	first := newTestEngine(t, "", sampleRecipes(), 42)
	second := newTestEngine(t, "", sampleRecipes(), 42)

	for i := 0; i < 5; i++ {
		a := first.FindRecipes([]string{"carne"}, 3)
		b := second.FindRecipes([]string{"carne"}, 3)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("round %d: same seed produced %v and %v", i, a, b)
		}
	}
}

func TestFindRecipes_DoesNotMutateTables(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "", sampleRecipes(), 3)
	before := make([]string, len(e.tables.Recipes()))
	for i, r := range e.tables.Recipes() {
		before[i] = r.Title
	}
	for i := 0; i < 10; i++ {
		e.FindRecipes([]string{"carne"}, 2)
	}
	for i, r := range e.tables.Recipes() {
		if r.Title != before[i] {
			t.Fatalf("recipe table reordered at %d: %q != %q", i, r.Title, before[i])
		}
	}
}

func TestNewEngineDefaults(t *testing.T) {
	t.Parallel()

	e := NewEngine(catalog.New(catalog.Source{}), Config{}, logging.NewTestLogger(io.Discard))
	if e.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", e.Limit(), DefaultLimit)
	}
	if e.RecipeQuantity() != DefaultRecipeQuantity {
		t.Errorf("RecipeQuantity() = %d, want %d", e.RecipeQuantity(), DefaultRecipeQuantity)
	}

	custom := NewEngine(catalog.New(catalog.Source{}), Config{Limit: 5, RecipeQuantity: 2, Seed: 9}, logging.NewTestLogger(io.Discard))
	if custom.Limit() != 5 || custom.RecipeQuantity() != 2 {
		t.Errorf("custom limits = %d/%d, want 5/2", custom.Limit(), custom.RecipeQuantity())
	}
}
