// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

// Package explorer tracks per-session ingredient selections and derives
// everything the UI shows from them.
//
// # State machine
//
// A Session holds an ordered selection of graph nodes with no duplicates:
//
//   - Toggle(nodeID): removes the node if selected, appends it otherwise,
//     and records it as last clicked. Unknown ids return ErrUnknownNode.
//   - AddRecommended(name): resolves the node by ingredient name, then
//     toggles it.
//   - SelectRecipe(title): replaces the selection with the recipe's
//     ingredients that are graph nodes, in graph order. A title without an
//     exact match leaves the session untouched.
//
// After every change the session recomputes recommendations, sampled
// recipes, emphasis tiers and the nutrition record of the last clicked node,
// bumps its version and publishes the new view.
//
// # Sessions
//
// Sessions live in a bounded LRU with a sliding TTL. Sweep removes expired
// entries and is driven by a supervised janitor.
package explorer
