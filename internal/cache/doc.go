// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

// Package cache provides the in-memory data structures behind the explorer.
//
//   - LRU: a generic least-recently-used map with TTL expiry. The explorer
//     keeps its sessions in one.
//   - Trie: a prefix tree for autocomplete over ingredient names and recipe
//     titles. Keys are folded (lowercase, accents removed) so "limon" finds
//     "limón".
//
// Both types are safe for concurrent use.
package cache
