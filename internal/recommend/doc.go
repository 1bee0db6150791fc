// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

// Package recommend suggests ingredients and recipes for a selection.
//
// # Pairing recommendations
//
// For every selected ingredient the engine walks its row of the pairing
// matrix and accumulates the counts of partners that are not selected:
//
//	score[partner] += count
//
// Candidates are ordered by descending score with a stable sort, so ties keep
// the order in which they were first met (selection order, then partner
// order in the matrix). The top N names are returned; N defaults to 3.
//
// # Recipes
//
// FindRecipes keeps recipes whose ingredient list contains every required
// name (exact match) and samples up to qty of them without replacement.
//
// # Determinism
//
// Sampling draws from a seeded math/rand source guarded by a mutex. A zero
// seed seeds from the clock; tests pass a fixed seed.
//
// # Usage
//
//	engine := recommend.NewEngine(tables, recommend.Config{Seed: 42}, logger)
//	names := engine.Recommend([]string{"carne", "ajo"})
//	recipes := engine.FindRecipes([]string{"carne", "ajo"}, 3)
//
// # Thread Safety
//
// Engine is safe for concurrent use. The catalog tables are read-only and
// only the random source is locked.
package recommend
