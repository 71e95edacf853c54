// SPDX-License-Identifier: MIT
//
// File: spring.go
// Role: Force-directed Spring layout (pairwise repulsion, edge attraction,
// clamped displacement) implementing core.Layout.
// Determinism:
//   - Node pairs are visited in insertion order; jitter for coincident
//     nodes comes from the configured *rand.Rand, so a seeded Spring
//     reproduces the same positions.

package layout

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/netgraph/core"
)

// Spring is a force-based layout in which edges are regarded as springs.
// Forces are applied to the nodes, pulling them closer or pushing them apart.
//
// Spring embeds core.StaticLayout for the iteration counter, Reset and Bounds.
type Spring struct {
	core.StaticLayout

	k         float64
	force     float64
	repulsion float64
	rng       *rand.Rand
}

// NewSpring returns a Spring configured by opts.
// Returns ErrBadConstant when K, Force or Repulsion is invalid.
func NewSpring(opts ...Option) (*Spring, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("NewSpring(k=%g, force=%g, repulsion=%g): %w", o.K, o.Force, o.Repulsion, err)
	}
	if o.Rand == nil {
		o.Rand = clockRand()
	}

	return &Spring{k: o.K, force: o.Force, repulsion: o.Repulsion, rng: o.Rand}, nil
}

// K returns the force constant.
func (s *Spring) K() float64 { return s.k }

// Force returns the force multiplier.
func (s *Spring) Force() float64 { return s.force }

// Repulsion returns the maximum repulsive force radius.
func (s *Spring) Repulsion() float64 { return s.repulsion }

// Update advances the simulation by one iteration.
//
// Implementation:
//   - Stage 1: Count the iteration (embedded StaticLayout).
//   - Stage 2: Repulse every unordered node pair closer than Repulsion.
//   - Stage 3: Attract the endpoints of every edge; heavier and shorter
//     edges pull harder.
//   - Stage 4: Move each non-fixed node by its clamped force, refresh its
//     screen position, and zero every force accumulator.
//
// Complexity: O(V² + E) per call.
func (s *Spring) Update(g *core.Graph, weight, limit float64) {
	s.StaticLayout.Update(g, weight, limit)

	nodes := g.Nodes()
	for i, n1 := range nodes {
		for _, n2 := range nodes[i+1:] {
			s.repulse(n1, n2)
		}
	}

	for _, e := range g.Edges() {
		n1, n2 := g.Endpoints(e)
		length := e.Length
		if length == 0 {
			length = minLength
		}
		s.attract(n1, n2, weight*e.Weight, 1/length)
	}

	distance := g.Distance()
	for _, n := range nodes {
		if !n.Fixed {
			n.Pos.X += clamp(s.force*n.Force.X, limit)
			n.Pos.Y += clamp(s.force*n.Force.Y, limit)
		}
		n.X, n.Y = n.Pos.X*distance, n.Pos.Y*distance
		n.Force = r2.Vec{}
	}
}

// Clone returns a Spring with the same constants, a zero counter and a
// jitter source seeded from this one.
func (s *Spring) Clone() core.Layout {
	return &Spring{
		k:         s.k,
		force:     s.force,
		repulsion: s.repulsion,
		rng:       rand.New(rand.NewSource(s.rng.Int63())),
	}
}

// delta yields (dx, dy, d, d²) from n1 to n2. Coincident nodes get a small
// random offset so the distance is never zero.
func (s *Spring) delta(n1, n2 *core.Node) (dx, dy, d, d2 float64) {
	dx = n2.Pos.X - n1.Pos.X
	dy = n2.Pos.Y - n1.Pos.Y
	d2 = dx*dx + dy*dy
	if d2 < minSeparation2 {
		dx = s.rng.Float64()*0.1 + 0.1
		dy = s.rng.Float64()*0.1 + 0.1
		d2 = dx*dx + dy*dy
	}

	return dx, dy, math.Sqrt(d2), d2
}

func (s *Spring) repulse(n1, n2 *core.Node) {
	dx, dy, d, d2 := s.delta(n1, n2)
	if d >= s.repulsion {
		return
	}
	f := s.k * s.k / d2
	n2.Force.X += f * dx
	n2.Force.Y += f * dy
	n1.Force.X -= f * dx
	n1.Force.Y -= f * dy
}

func (s *Spring) attract(n1, n2 *core.Node, weight, stiffness float64) {
	dx, dy, d, d2 := s.delta(n1, n2)
	d = math.Min(d, s.repulsion)
	f := (d2 - s.k*s.k) / s.k * stiffness
	f *= weight*0.5 + 1
	f /= d
	n2.Force.X -= f * dx
	n2.Force.Y -= f * dy
	n1.Force.X += f * dx
	n1.Force.Y += f * dy
}

// clamp bounds v to [-limit, limit].
func clamp(v, limit float64) float64 {
	return math.Max(-limit, math.Min(v, limit))
}

// NewGraph returns a core.Graph with a default Spring attached. opts are
// applied after the layout, so a later core.WithLayout replaces it.
func NewGraph(opts ...core.GraphOption) *core.Graph {
	s, _ := NewSpring() // defaults always validate
	all := make([]core.GraphOption, 0, len(opts)+1)
	all = append(all, core.WithLayout(s))
	all = append(all, opts...)

	return core.NewGraph(all...)
}

var _ core.Layout = (*Spring)(nil)
