// SPDX-License-Identifier: MIT
//
// File: layout.go
// Role: Layout strategy contract, the StaticLayout base, and the Graph glue
// that drives it (Update, Bounds, NodeAt, Drag).

package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Layout computes node positions iteratively. A Layout is owned by exactly
// one Graph at a time; Clone produces an independent strategy with the same
// parameters and a zero iteration counter.
type Layout interface {
	// Update advances the simulation by one iteration. weight scales the
	// impact of edge weight, limit bounds per-axis displacement.
	Update(g *Graph, weight, limit float64)
	// Reset zeroes the iteration counter and every node's position and force.
	Reset(g *Graph)
	// Bounds returns the bounding box of internal (unscaled) node positions.
	Bounds(g *Graph) r2.Box
	// Iterations returns the number of updates since the last Reset or Rewind.
	Iterations() int
	// Rewind zeroes the iteration counter only, e.g. after a drag.
	Rewind()
	// Clone returns a fresh strategy with the same parameters.
	Clone() Layout
}

// StaticLayout counts iterations but never moves nodes. Force-directed
// layouts embed it for the counter, Reset and Bounds.
type StaticLayout struct {
	iterations int
}

// Update increments the iteration counter.
func (l *StaticLayout) Update(_ *Graph, _, _ float64) { l.iterations++ }

// Iterations returns the iteration counter.
func (l *StaticLayout) Iterations() int { return l.iterations }

// Rewind zeroes the iteration counter.
func (l *StaticLayout) Rewind() { l.iterations = 0 }

// Clone returns a StaticLayout with a zero counter.
func (l *StaticLayout) Clone() Layout { return &StaticLayout{} }

// Reset zeroes the counter and all node positions and forces.
func (l *StaticLayout) Reset(g *Graph) {
	l.iterations = 0
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		n.Pos, n.Force = r2.Vec{}, r2.Vec{}
		n.X, n.Y = 0, 0
	}
}

// Bounds returns the axis-aligned bounding box of internal node positions.
// An empty graph yields the zero box.
func (l *StaticLayout) Bounds(g *Graph) r2.Box {
	var (
		box   r2.Box
		first = true
	)
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		if first {
			box = r2.Box{Min: n.Pos, Max: n.Pos}
			first = false
			continue
		}
		box.Min.X = math.Min(box.Min.X, n.Pos.X)
		box.Min.Y = math.Min(box.Min.Y, n.Pos.Y)
		box.Max.X = math.Max(box.Max.X, n.Pos.X)
		box.Max.Y = math.Max(box.Max.Y, n.Pos.Y)
	}

	return box
}

// Update advances the layout by the given number of iterations.
//
// Implementation:
//   - Stage 1: Reject negative or NaN iterations, weight and limit (ErrInvalidUpdate).
//   - Stage 2: Call Layout.Update iterations times.
//
// Complexity: iterations × the layout's per-iteration cost.
func (g *Graph) Update(iterations int, weight, limit float64) error {
	if iterations < 0 || weight < 0 || limit < 0 || math.IsNaN(weight) || math.IsNaN(limit) {
		return fmt.Errorf("Update(iterations=%d, weight=%g, limit=%g): %w",
			iterations, weight, limit, ErrInvalidUpdate)
	}
	for i := 0; i < iterations; i++ {
		g.layout.Update(g, weight, limit)
	}

	return nil
}

// UpdateDefault advances the layout with DefaultIterations, DefaultWeight
// and DefaultLimit.
func (g *Graph) UpdateDefault() {
	_ = g.Update(DefaultIterations, DefaultWeight, DefaultLimit)
}

// Bounds returns the layout's bounding box of internal node positions.
func (g *Graph) Bounds() r2.Box { return g.layout.Bounds(g) }

// NodeAt returns the first node (in insertion order) whose hit box contains
// the screen point (x, y), or nil.
// Complexity: O(V).
func (g *Graph) NodeAt(x, y float64) *Node {
	for _, n := range g.nodes {
		if n != nil && n.Contains(x, y) {
			return n
		}
	}

	return nil
}

// Pointer is the input device state consumed by Drag. Position is expressed
// in graph screen coordinates (the caller undoes any canvas translation).
type Pointer interface {
	Pressed() bool
	Dragged() bool
	Position() (x, y float64)
}

// Drag moves a node with the pointer.
//
// A press without movement picks the node under the pointer; a release
// drops it. While a node is held its internal position follows the pointer
// and the layout iteration counter is rewound, so the simulation treats the
// drag as a fresh perturbation.
func (g *Graph) Drag(p Pointer) {
	if !p.Pressed() {
		g.dragged = noHandle
		return
	}
	x, y := p.Position()
	if !p.Dragged() {
		g.dragged = noHandle
		if n := g.NodeAt(x, y); n != nil {
			g.dragged = n.handle
		}
	}
	if g.dragged == noHandle {
		return
	}
	n := g.nodes[g.dragged]
	n.Pos = r2.Vec{X: x / g.distance, Y: y / g.distance}
	n.X, n.Y = x, y
	g.layout.Rewind()
}
