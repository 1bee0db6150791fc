// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package graph

import (
	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/models"
)

// Radius scale bounds.
const (
	mentionsMin = 14
	mentionsMax = 115
	radiusMin   = 15
	radiusMax   = 70
)

// TransformNumber maps x linearly from [14,115] to [15,70]. Values outside
// the input range extrapolate.
func TransformNumber(x float64) float64 {
	return ((x-mentionsMin)/(mentionsMax-mentionsMin))*(radiusMax-radiusMin) + radiusMin
}

// ColorFunc returns the display color of an ingredient, or "".
type ColorFunc func(ingredient string) string

// Build derives nodes and edges from the flat pairing list. Two names that
// slugify to the same id share one node.
func Build(tables *catalog.Tables, color ColorFunc) ([]models.GraphNode, []models.GraphEdge) {
	pairs := tables.Pairs()
	nodes := make([]models.GraphNode, 0)
	edges := make([]models.GraphEdge, 0, 2*len(pairs))
	seen := make(map[string]struct{})

	addNode := func(name string) string {
		id := catalog.Slugify(name)
		if _, ok := seen[id]; ok {
			return id
		}
		seen[id] = struct{}{}
		node := models.GraphNode{
			ID:     id,
			Name:   name,
			Radius: TransformNumber(float64(tables.Mentions(name))),
		}
		if color != nil {
			node.Color = color(name)
		}
		nodes = append(nodes, node)
		return id
	}

	for _, p := range pairs {
		a := addNode(p.Ing1)
		b := addNode(p.Ing2)
		edges = append(edges,
			models.GraphEdge{Source: a, Target: b, Value: p.Count},
			models.GraphEdge{Source: b, Target: a, Value: p.Count},
		)
	}
	return nodes, edges
}
