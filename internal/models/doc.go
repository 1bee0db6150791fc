// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

/*
Package models defines the data structures shared across Maridaje.

Key Components:

  - Recipe, PairingEntry, FoodRecord: rows of the static data tables
  - GraphNode, GraphEdge, Point: the derived ingredient graph
  - Emphasis, SessionView: explorer state as returned to clients
  - APIResponse: standardized API response wrapper

Models carry json tags matching the on-disk table formats so the catalog
loader and the pipeline writers share one definition.
*/
package models
