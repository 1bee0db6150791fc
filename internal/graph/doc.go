// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

// Package graph builds the ingredient co-occurrence graph and lays it out.
//
// # Nodes and edges
//
// Nodes are the distinct ingredient names of the flat pairing list, in the
// order they first appear. A node id is its name with spaces replaced by
// dashes. Every pairing entry yields two directed edges (a->b and b->a) that
// reference node ids.
//
// Node radius maps the number of pairing entries that mention the ingredient
// from [14,115] onto [15,70] without clamping. Node color comes from the
// ingredient's sweet/savory label, or is empty when it has none.
//
// # Layout
//
// Positions come from a velocity Verlet force simulation with three forces:
//
//   - link: pulls endpoints toward distance 20 - value*0.5 with strength
//     1/min(degree)
//   - charge: pairwise repulsion of -600, computed directly
//   - center: translates the centroid to (width/2, height/2)
//
// Alpha decays from 1 toward 0 at 1 - 0.001^(1/300) per tick and velocities
// decay by 0.4. The run stops once alpha drops below 0.1. Initial positions
// follow a phyllotaxis spiral and jitter uses a fixed seed, so a layout is
// reproducible.
//
// # Emphasis
//
// ComputeEmphasis derives the selected/connected tiers and the "common
// links" of a selection: outgoing edges whose target is shared by enough of
// the other selected nodes.
//
// # View
//
// A View builds its graph and layout exactly once per instance, either on
// first use or through Init.
package graph
