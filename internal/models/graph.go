// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package models

// GraphNode is an ingredient node. ID is the name with spaces replaced by "-".
type GraphNode struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

// GraphEdge joins two nodes by id. Every pairing produces both directions.
type GraphEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// EdgeKey identifies a directed edge.
type EdgeKey struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Point is a laid-out node position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GraphPayload is the full graph with its layout.
type GraphPayload struct {
	Nodes     []GraphNode      `json:"nodes"`
	Edges     []GraphEdge      `json:"edges"`
	Positions map[string]Point `json:"positions"`
	Ticks     int              `json:"ticks"`
	Alpha     float64          `json:"alpha"`
}

// Emphasis is the visual tier assignment for the current selection.
//
// Selected nodes are drawn in the selection color. Connected holds the other
// endpoints of common links at full opacity. An edge is highlighted when
// either endpoint is listed in Anchors, the endpoints of every common link.
type Emphasis struct {
	Selected    []string  `json:"selected"`
	Connected   []string  `json:"connected"`
	Anchors     []string  `json:"anchors"`
	CommonLinks []EdgeKey `json:"common_links"`
}
