// SPDX-License-Identifier: MIT
// Package layout_test verifies the Spring layout: separation of coincident
// nodes, fixed nodes, displacement clamping, seeding and cloning.

package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/layout"
)

func seededGraph(t *testing.T, seed int64, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	s, err := layout.NewSpring(layout.WithSeed(seed))
	require.NoError(t, err)
	g := core.NewGraph(append([]core.GraphOption{core.WithLayout(s)}, opts...)...)
	require.NoError(t, g.Err())

	return g
}

// TestCoincidentNodesSeparate: two connected nodes at the origin move apart
// after one update and stay finite.
func TestCoincidentNodesSeparate(t *testing.T) {
	g := seededGraph(t, 1)
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	require.NoError(t, g.Update(1, core.DefaultWeight, core.DefaultLimit))

	a, b := g.Node("A"), g.Node("B")
	for _, v := range []float64{a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y} {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
	require.Greater(t, math.Hypot(b.Pos.X-a.Pos.X, b.Pos.Y-a.Pos.Y), 0.0)
	require.Equal(t, a.Pos.X*g.Distance(), a.X)
	require.Equal(t, b.Pos.Y*g.Distance(), b.Y)
	require.Zero(t, a.Force.X, "forces are reset after each move")
	require.Equal(t, 1, g.Layout().Iterations())
}

// TestFixedNodeStays: fixed nodes never move but still push others.
func TestFixedNodeStays(t *testing.T) {
	g := seededGraph(t, 2)
	_, _ = g.AddNode("A", core.WithFixed(), core.WithPosition(1, 1))
	_, _ = g.AddNode("B", core.WithPosition(1.5, 1))
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	require.NoError(t, g.Update(10, core.DefaultWeight, core.DefaultLimit))
	a := g.Node("A")
	require.Equal(t, 1.0, a.Pos.X)
	require.Equal(t, 1.0, a.Pos.Y)
	require.NotEqual(t, 1.5, g.Node("B").Pos.X)
}

// TestDisplacementClamped: no coordinate moves further than limit per iteration.
func TestDisplacementClamped(t *testing.T) {
	g := seededGraph(t, 3)
	_, _ = g.AddNode("A", core.WithPosition(0, 0))
	_, _ = g.AddNode("B", core.WithPosition(0.3, 0))
	_, _ = g.AddNode("C", core.WithPosition(40, 40))
	_, _ = g.AddEdge("A", "C", core.WithWeight(1))

	const limit = 0.25
	before := map[string][2]float64{}
	for _, n := range g.Nodes() {
		before[n.ID] = [2]float64{n.Pos.X, n.Pos.Y}
	}
	require.NoError(t, g.Update(1, core.DefaultWeight, limit))
	for _, n := range g.Nodes() {
		require.LessOrEqual(t, math.Abs(n.Pos.X-before[n.ID][0]), limit+1e-12, n.ID)
		require.LessOrEqual(t, math.Abs(n.Pos.Y-before[n.ID][1]), limit+1e-12, n.ID)
	}
}

// TestSeedReproducible: equal seeds give equal layouts.
func TestSeedReproducible(t *testing.T) {
	run := func() []float64 {
		g := seededGraph(t, 42)
		_, _ = g.AddEdge("A", "B")
		_, _ = g.AddEdge("B", "C")
		_, _ = g.AddEdge("C", "A")
		require.NoError(t, g.Update(20, core.DefaultWeight, core.DefaultLimit))
		var out []float64
		for _, n := range g.Nodes() {
			out = append(out, n.Pos.X, n.Pos.Y)
		}
		return out
	}
	require.Equal(t, run(), run())
}

// TestResetAndClone: Reset zeroes positions, Clone keeps constants only.
func TestResetAndClone(t *testing.T) {
	s, err := layout.NewSpring(layout.WithK(2), layout.WithRepulsion(20), layout.WithSeed(7))
	require.NoError(t, err)
	g := core.NewGraph(core.WithLayout(s))
	_, _ = g.AddEdge("A", "B")
	require.NoError(t, g.Update(3, core.DefaultWeight, core.DefaultLimit))
	require.Equal(t, 3, s.Iterations())

	c, ok := s.Clone().(*layout.Spring)
	require.True(t, ok)
	require.Equal(t, 2.0, c.K())
	require.Equal(t, 20.0, c.Repulsion())
	require.Equal(t, layout.DefaultForce, c.Force())
	require.Zero(t, c.Iterations())

	s.Reset(g)
	require.Zero(t, s.Iterations())
	require.Zero(t, g.Node("B").Pos.X)
	require.Zero(t, g.Node("B").X)
}

// TestBadConstants: non-positive constants are rejected.
func TestBadConstants(t *testing.T) {
	_, err := layout.NewSpring(layout.WithK(0))
	require.ErrorIs(t, err, layout.ErrBadConstant)
	_, err = layout.NewSpring(layout.WithForce(math.NaN()))
	require.ErrorIs(t, err, layout.ErrBadConstant)
	_, err = layout.NewSpring(layout.WithRepulsion(-1))
	require.ErrorIs(t, err, layout.ErrBadConstant)
}

// TestNewGraphAttachesSpring: the shortcut attaches a Spring; copies keep it.
func TestNewGraphAttachesSpring(t *testing.T) {
	g := layout.NewGraph(core.WithDistance(20))
	require.NoError(t, g.Err())
	require.IsType(t, &layout.Spring{}, g.Layout())
	require.Equal(t, 20.0, g.Distance())

	_, _ = g.AddEdge("A", "B")
	require.IsType(t, &layout.Spring{}, g.Copy().Layout())

	static := layout.NewGraph(core.WithLayout(&core.StaticLayout{}))
	require.IsType(t, &core.StaticLayout{}, static.Layout())
}

// TestBoundsGrowAfterUpdate: coincident nodes spread into a non-empty box.
func TestBoundsGrowAfterUpdate(t *testing.T) {
	g := seededGraph(t, 9)
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	require.NoError(t, g.Update(5, core.DefaultWeight, core.DefaultLimit))

	box := g.Bounds()
	require.Greater(t, box.Max.X-box.Min.X, 0.0)
	require.Greater(t, box.Max.Y-box.Min.Y, 0.0)
}
