// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package graph

import (
	"github.com/tomtom215/maridaje/internal/models"
)

// ComputeEmphasis derives the display tiers of a selection.
//
// Let L be the edges leaving selected nodes, in selection order then edge
// order. An edge x in L is common when 1 plus the number of edges in L that
// leave a different node toward the same target reaches len(selected). The
// endpoints of common edges are the anchors; anchors that are not selected
// form the connected tier.
func ComputeEmphasis(selected []models.GraphNode, edges []models.GraphEdge) models.Emphasis {
	em := models.Emphasis{
		Selected:    make([]string, 0, len(selected)),
		Connected:   make([]string, 0),
		Anchors:     make([]string, 0),
		CommonLinks: make([]models.EdgeKey, 0),
	}
	if len(selected) == 0 {
		return em
	}

	isSelected := make(map[string]struct{}, len(selected))
	for _, n := range selected {
		em.Selected = append(em.Selected, n.ID)
		isSelected[n.ID] = struct{}{}
	}

	bySource := make(map[string][]models.GraphEdge)
	for _, e := range edges {
		if _, ok := isSelected[e.Source]; ok {
			bySource[e.Source] = append(bySource[e.Source], e)
		}
	}
	outgoing := make([]models.GraphEdge, 0)
	for _, n := range selected {
		outgoing = append(outgoing, bySource[n.ID]...)
	}

	// Edge counts per target and per (source, target) pair.
	perTarget := make(map[string]int)
	perSourceTarget := make(map[models.EdgeKey]int)
	for _, e := range outgoing {
		perTarget[e.Target]++
		perSourceTarget[models.EdgeKey{Source: e.Source, Target: e.Target}]++
	}

	anchors := make(map[string]struct{})
	addAnchor := func(id string) {
		if _, ok := anchors[id]; ok {
			return
		}
		anchors[id] = struct{}{}
		em.Anchors = append(em.Anchors, id)
		if _, sel := isSelected[id]; !sel {
			em.Connected = append(em.Connected, id)
		}
	}

	for _, x := range outgoing {
		key := models.EdgeKey{Source: x.Source, Target: x.Target}
		repeated := 1 + perTarget[x.Target] - perSourceTarget[key]
		if repeated < len(selected) {
			continue
		}
		em.CommonLinks = append(em.CommonLinks, key)
		addAnchor(x.Source)
		addAnchor(x.Target)
	}
	return em
}

// EdgeHighlighted reports whether an edge touches an anchor of em.
func EdgeHighlighted(em models.Emphasis, e models.GraphEdge) bool {
	for _, id := range em.Anchors {
		if e.Source == id || e.Target == id {
			return true
		}
	}
	return false
}
