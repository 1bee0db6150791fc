// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package graph

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/metrics"
	"github.com/tomtom215/maridaje/internal/models"
)

// View owns one built graph and its layout.
// The graph is built exactly once per View; all accessors are safe for
// concurrent use and trigger the build on first call.
type View struct {
	tables *catalog.Tables
	color  ColorFunc
	cfg    LayoutConfig
	logger zerolog.Logger

	once  sync.Once
	ready atomic.Bool

	nodes     []models.GraphNode
	edges     []models.GraphEdge
	positions map[string]models.Point
	ticks     int
	alpha     float64

	byID   map[string]int
	byName map[string]int
}

// NewView creates an unbuilt view.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewView(tables *catalog.Tables, color ColorFunc, cfg LayoutConfig, logger zerolog.Logger) *View {
	return &View{
		tables: tables,
		color:  color,
		cfg:    cfg,
		logger: logger.With().Str("component", "graph").Logger(),
	}
}

// Init builds the graph and runs the layout. Later calls do nothing.
func (v *View) Init() {
	v.once.Do(v.build)
}

func (v *View) build() {
	start := time.Now()

	v.nodes, v.edges = Build(v.tables, v.color)
	v.byID = make(map[string]int, len(v.nodes))
	v.byName = make(map[string]int, len(v.nodes))
	for i, n := range v.nodes {
		v.byID[n.ID] = i
		v.byName[n.Name] = i
	}

	sim := NewSimulation(v.nodes, v.edges, v.cfg)
	sim.Run()
	v.positions = sim.Positions()
	v.ticks = sim.Ticks()
	v.alpha = sim.Alpha()

	elapsed := time.Since(start)
	metrics.RecordLayout(v.ticks, elapsed)
	v.ready.Store(true)

	v.logger.Info().
		Int("nodes", len(v.nodes)).
		Int("edges", len(v.edges)).
		Int("ticks", v.ticks).
		Float64("alpha", v.alpha).
		Dur("elapsed", elapsed).
		Msg("Graph layout converged")
}

// Ready reports whether Init has completed.
func (v *View) Ready() bool { return v.ready.Load() }

// Payload returns the nodes, edges and layout for rendering.
func (v *View) Payload() models.GraphPayload {
	v.Init()
	return models.GraphPayload{
		Nodes:     v.nodes,
		Edges:     v.edges,
		Positions: v.positions,
		Ticks:     v.ticks,
		Alpha:     v.alpha,
	}
}

// Nodes returns the graph nodes in first-appearance order.
func (v *View) Nodes() []models.GraphNode {
	v.Init()
	return v.nodes
}

// Edges returns the directed edges.
func (v *View) Edges() []models.GraphEdge {
	v.Init()
	return v.edges
}

// NodeByID looks a node up by id.
func (v *View) NodeByID(id string) (models.GraphNode, bool) {
	v.Init()
	i, ok := v.byID[id]
	if !ok {
		return models.GraphNode{}, false
	}
	return v.nodes[i], true
}

// NodeByName looks a node up by ingredient name.
func (v *View) NodeByName(name string) (models.GraphNode, bool) {
	v.Init()
	i, ok := v.byName[name]
	if !ok {
		return models.GraphNode{}, false
	}
	return v.nodes[i], true
}

// NodesNamed returns the nodes whose name is in names, in graph order.
func (v *View) NodesNamed(names []string) []models.GraphNode {
	v.Init()
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}
	out := make([]models.GraphNode, 0)
	for _, n := range v.nodes {
		if _, ok := want[n.Name]; ok {
			out = append(out, n)
		}
	}
	return out
}
