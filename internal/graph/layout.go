// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package graph

import (
	"math"
	"math/rand"

	"github.com/tomtom215/maridaje/internal/models"
)

// LayoutConfig tunes the force simulation.
type LayoutConfig struct {
	Width          float64
	Height         float64
	Charge         float64
	LinkDistance   float64
	LinkValueScale float64
	AlphaThreshold float64
	MaxTicks       int
}

// DefaultLayoutConfig returns the stock simulation parameters.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Width:          928,
		Height:         600,
		Charge:         -600,
		LinkDistance:   20,
		LinkValueScale: 0.5,
		AlphaThreshold: 0.1,
		MaxTicks:       300,
	}
}

const (
	alphaMin      = 0.001
	velocityDecay = 0.4
	initialRadius = 10
	jitterSeed    = 1
	distanceMin2  = 1
)

var (
	alphaDecay   = 1 - math.Pow(alphaMin, 1.0/300)
	initialAngle = math.Pi * (3 - math.Sqrt(5))
)

type body struct {
	x, y, vx, vy float64
}

type spring struct {
	source, target int
	distance       float64
	strength       float64
	bias           float64
}

// Simulation is a force-directed layout over a fixed node and edge set.
// It is not safe for concurrent use.
type Simulation struct {
	cfg     LayoutConfig
	ids     []string
	bodies  []body
	springs []spring
	alpha   float64
	ticks   int
	jitter  *rand.Rand
}

// NewSimulation places nodes on a phyllotaxis spiral and prepares the link
// springs. Edges naming unknown node ids are ignored.
func NewSimulation(nodes []models.GraphNode, edges []models.GraphEdge, cfg LayoutConfig) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		ids:    make([]string, len(nodes)),
		bodies: make([]body, len(nodes)),
		alpha:  1,
		jitter: rand.New(rand.NewSource(jitterSeed)), //nolint:gosec // deterministic jitter, not security sensitive
	}

	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		s.ids[i] = n.ID
		index[n.ID] = i
		r := initialRadius * math.Sqrt(0.5+float64(i))
		a := float64(i) * initialAngle
		s.bodies[i] = body{x: r * math.Cos(a), y: r * math.Sin(a)}
	}

	degree := make([]int, len(nodes))
	for _, e := range edges {
		src, okS := index[e.Source]
		dst, okT := index[e.Target]
		if !okS || !okT {
			continue
		}
		degree[src]++
		degree[dst]++
		s.springs = append(s.springs, spring{
			source:   src,
			target:   dst,
			distance: cfg.LinkDistance - e.Value*cfg.LinkValueScale,
		})
	}
	for i := range s.springs {
		sp := &s.springs[i]
		ds, dt := float64(degree[sp.source]), float64(degree[sp.target])
		sp.strength = 1 / math.Min(ds, dt)
		sp.bias = ds / (ds + dt)
	}
	return s
}

// Alpha returns the current cooling parameter.
func (s *Simulation) Alpha() float64 { return s.alpha }

// Ticks returns the number of steps taken so far.
func (s *Simulation) Ticks() int { return s.ticks }

// Tick advances the simulation by one step.
func (s *Simulation) Tick() {
	s.alpha += (0 - s.alpha) * alphaDecay
	s.applyLinks()
	s.applyCharge()
	s.applyCenter()
	for i := range s.bodies {
		b := &s.bodies[i]
		b.vx *= 1 - velocityDecay
		b.vy *= 1 - velocityDecay
		b.x += b.vx
		b.y += b.vy
	}
	s.ticks++
}

// Run ticks until alpha falls below the threshold or MaxTicks is reached.
func (s *Simulation) Run() {
	for s.alpha >= s.cfg.AlphaThreshold && (s.cfg.MaxTicks <= 0 || s.ticks < s.cfg.MaxTicks) {
		s.Tick()
	}
}

// Positions returns the node positions keyed by node id.
func (s *Simulation) Positions() map[string]models.Point {
	out := make(map[string]models.Point, len(s.bodies))
	for i, b := range s.bodies {
		out[s.ids[i]] = models.Point{X: b.x, Y: b.y}
	}
	return out
}

func (s *Simulation) jiggle() float64 {
	return (s.jitter.Float64() - 0.5) * 1e-6
}

func (s *Simulation) applyLinks() {
	for _, sp := range s.springs {
		src, dst := &s.bodies[sp.source], &s.bodies[sp.target]
		x := dst.x + dst.vx - src.x - src.vx
		y := dst.y + dst.vy - src.y - src.vy
		if x == 0 {
			x = s.jiggle()
		}
		if y == 0 {
			y = s.jiggle()
		}
		l := math.Sqrt(x*x + y*y)
		l = (l - sp.distance) / l * s.alpha * sp.strength
		x *= l
		y *= l
		dst.vx -= x * sp.bias
		dst.vy -= y * sp.bias
		src.vx += x * (1 - sp.bias)
		src.vy += y * (1 - sp.bias)
	}
}

// applyCharge computes pairwise repulsion directly.
// TODO: switch to a Barnes-Hut quadtree if catalogs grow past a few thousand ingredients.
func (s *Simulation) applyCharge() {
	k := s.cfg.Charge * s.alpha
	for i := range s.bodies {
		bi := &s.bodies[i]
		for j := range s.bodies {
			if i == j {
				continue
			}
			bj := &s.bodies[j]
			x := bj.x - bi.x
			y := bj.y - bi.y
			if x == 0 {
				x = s.jiggle()
			}
			if y == 0 {
				y = s.jiggle()
			}
			l := x*x + y*y
			if l < distanceMin2 {
				l = math.Sqrt(distanceMin2 * l)
			}
			bi.vx += x * k / l
			bi.vy += y * k / l
		}
	}
}

func (s *Simulation) applyCenter() {
	n := len(s.bodies)
	if n == 0 {
		return
	}
	var sx, sy float64
	for _, b := range s.bodies {
		sx += b.x
		sy += b.y
	}
	sx = sx/float64(n) - s.cfg.Width/2
	sy = sy/float64(n) - s.cfg.Height/2
	for i := range s.bodies {
		s.bodies[i].x -= sx
		s.bodies[i].y -= sy
	}
}
