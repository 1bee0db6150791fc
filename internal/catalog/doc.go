// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

// Package catalog holds the immutable static tables behind the explorer.
//
// Tables are loaded once at startup (Load) and never mutated, so a *Tables
// can be shared by any number of goroutines without locking.
//
// # Tables
//
//   - Pairs: the flat {ing1, ing2, count} list the graph is built from
//   - Matrix: ingredient -> ordered partner counts, used for recommendations
//   - Recipes: {title, url, ingredients}
//   - Nutrition index: ingredient -> canonical USDA description
//   - Foods: the USDA Foundation Foods records
//   - Labels: ingredient -> category label (Salado, Dulce, Indistinto)
//
// # Partner order
//
// Recommendation tie-breaking depends on the order partners appear in the
// matrix file, so nested matrices are decoded with a streaming token walk
// instead of into a Go map. When no matrix file is configured, the matrix is
// accumulated from the flat pairs in first-encounter order.
package catalog
