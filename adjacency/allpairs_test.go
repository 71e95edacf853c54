// SPDX-License-Identifier: MIT
// Package adjacency_test verifies all-pairs distances and path recovery.

package adjacency_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/adjacency"
	"github.com/katalvlaran/netgraph/core"
)

// square builds the 4-cycle A-B-C-D-A with unit costs (weight 0) and a
// heavy chord A→C (weight 0.5, cost 0.75) plus isolated X.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	_, err := g.AddEdge("A", "C", core.WithWeight(0.5))
	require.NoError(t, err)
	_, err = g.AddNode("X")
	require.NoError(t, err)

	return g
}

// TestAllPairsUndirected: the chord beats the two-hop route.
func TestAllPairsUndirected(t *testing.T) {
	d, err := adjacency.AllPairs(square(t))
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B", "C", "D", "X"}, d.IDs())

	w, ok := d.Distance("A", "C")
	require.True(t, ok)
	require.Equal(t, 0.75, w)
	require.Equal(t, []string{"A", "C"}, d.Path("A", "C"))

	w, ok = d.Distance("B", "D")
	require.True(t, ok)
	require.Equal(t, 2.0, w)
	require.Len(t, d.Path("B", "D"), 3)

	w, ok = d.Distance("A", "A")
	require.True(t, ok)
	require.Zero(t, w)
	require.Equal(t, []string{"A"}, d.Path("A", "A"))

	_, ok = d.Distance("A", "X")
	require.False(t, ok)
	require.Nil(t, d.Path("A", "X"))
	require.Nil(t, d.Path("A", "nope"))
}

// TestAllPairsDirected: one-way edges make the reverse trip go around.
func TestAllPairsDirected(t *testing.T) {
	d, err := adjacency.AllPairs(square(t), adjacency.WithDirected(true))
	require.NoError(t, err)

	w, ok := d.Distance("C", "A")
	require.True(t, ok)
	require.Equal(t, 2.0, w)
	require.Equal(t, []string{"C", "D", "A"}, d.Path("C", "A"))

	w, ok = d.Distance("B", "A")
	require.True(t, ok)
	require.Equal(t, 3.0, w)
	require.Equal(t, []string{"B", "C", "D", "A"}, d.Path("B", "A"))

	m := d.Matrix()
	require.True(t, math.IsInf(m.At(0, 4), 1))
}

// TestAllPairsNegativeCost: weights above 2 are rejected.
func TestAllPairsNegativeCost(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithWeight(4))
	_, err := adjacency.AllPairs(g)
	require.ErrorIs(t, err, adjacency.ErrNegativeCost)
}

// TestAllPairsEmpty: empty graphs produce an empty table.
func TestAllPairsEmpty(t *testing.T) {
	d, err := adjacency.AllPairs(core.NewGraph())
	require.NoError(t, err)
	require.Empty(t, d.IDs())
	require.Nil(t, d.Matrix())
	_, ok := d.Distance("A", "B")
	require.False(t, ok)
}
