// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package recommend

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/metrics"
	"github.com/tomtom215/maridaje/internal/models"
)

const (
	// DefaultLimit is the number of suggestions returned when none is configured.
	DefaultLimit = 3

	// DefaultRecipeQuantity is the sample size used when qty <= 0.
	DefaultRecipeQuantity = 3
)

// Config tunes the engine.
type Config struct {
	// Limit caps the suggestions returned by Recommend.
	Limit int

	// RecipeQuantity is the default sample size for FindRecipes.
	RecipeQuantity int

	// Seed seeds recipe sampling. Zero seeds from the clock.
	Seed int64
}

// Engine answers recommendation and recipe queries over the catalog.
// It is safe for concurrent use.
type Engine struct {
	tables *catalog.Tables
	config Config
	logger zerolog.Logger

	// Random source for recipe sampling (protected by rngMu for concurrent access)
	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewEngine creates an engine with a random source built from cfg.Seed.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(tables *catalog.Tables, cfg Config, logger zerolog.Logger) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewEngineWithRand(tables, cfg, logger, rand.New(rand.NewSource(seed))) //nolint:gosec // math/rand is fine for recipe sampling
}

// NewEngineWithRand creates an engine that samples recipes from rng.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngineWithRand(tables *catalog.Tables, cfg Config, logger zerolog.Logger, rng *rand.Rand) *Engine {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.RecipeQuantity <= 0 {
		cfg.RecipeQuantity = DefaultRecipeQuantity
	}
	return &Engine{
		tables: tables,
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		rng:    rng,
	}
}

// Recommend returns up to the configured limit of ingredient names that pair
// best with selected. The result is never nil.
func (e *Engine) Recommend(selected []string) []string {
	scored := e.RecommendScored(selected, e.config.Limit)
	names := make([]string, len(scored))
	for i, s := range scored {
		names[i] = s.Name
	}
	return names
}

// RecommendScored returns up to limit candidates with their aggregate score,
// highest first. A non-positive limit uses the configured one.
func (e *Engine) RecommendScored(selected []string, limit int) []models.ScoredIngredient {
	if limit <= 0 {
		limit = e.config.Limit
	}

	inSelection := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		inSelection[name] = struct{}{}
	}

	matrix := e.tables.Matrix()
	candidates := make([]models.ScoredIngredient, 0)
	position := make(map[string]int)

	for _, name := range selected {
		for _, p := range matrix.Partners(name) {
			if _, skip := inSelection[p.Name]; skip {
				continue
			}
			if i, ok := position[p.Name]; ok {
				candidates[i].Score += p.Count
				continue
			}
			position[p.Name] = len(candidates)
			candidates = append(candidates, models.ScoredIngredient{Name: p.Name, Score: p.Count})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	metrics.RecordRecommendation(len(candidates))
	e.logger.Debug().
		Strs("selected", selected).
		Int("returned", len(candidates)).
		Msg("recommendation computed")

	return candidates
}

// MatchingRecipes returns every recipe that contains all of required, in
// table order.
func (e *Engine) MatchingRecipes(required []string) []models.Recipe {
	matches := make([]models.Recipe, 0)
	for i := range e.tables.Recipes() {
		r := &e.tables.Recipes()[i]
		if r.HasAll(required) {
			matches = append(matches, *r)
		}
	}
	return matches
}

// FindRecipes samples up to qty recipes that contain all of required.
// A non-positive qty uses the configured quantity. The result is never nil.
func (e *Engine) FindRecipes(required []string, qty int) []models.Recipe {
	if qty <= 0 {
		qty = e.config.RecipeQuantity
	}

	matches := e.MatchingRecipes(required)
	metrics.RecipeMatches.Observe(float64(len(matches)))

	e.rngMu.Lock()
	e.rng.Shuffle(len(matches), func(i, j int) {
		matches[i], matches[j] = matches[j], matches[i]
	})
	e.rngMu.Unlock()

	if len(matches) > qty {
		matches = matches[:qty]
	}
	return matches
}

// Limit returns the configured suggestion limit.
func (e *Engine) Limit() int { return e.config.Limit }

// RecipeQuantity returns the configured recipe sample size.
func (e *Engine) RecipeQuantity() int { return e.config.RecipeQuantity }
