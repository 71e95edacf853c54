// SPDX-License-Identifier: MIT
// Package adjacency_test verifies Index construction (direction, reversal,
// heuristics, row normalization) and its query helpers.

package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/adjacency"
	"github.com/katalvlaran/netgraph/core"
)

// triangle builds A→B (w=1), B→C (w=0), C→A (w=0.5) plus isolated X.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", core.WithWeight(1))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C")
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", core.WithWeight(0.5))
	require.NoError(t, err)
	_, err = g.AddNode("X")
	require.NoError(t, err)

	return g
}

// TestBuildUndirected: every node has a row; undirected entries mirror.
func TestBuildUndirected(t *testing.T) {
	ix, err := adjacency.Build(triangle(t))
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B", "C", "X"}, ix.IDs())
	require.Empty(t, ix["X"])
	assert.Equal(t, 0.5, ix["A"]["B"])
	assert.Equal(t, 0.5, ix["B"]["A"])
	assert.Equal(t, 1.0, ix["C"]["B"])
	assert.Equal(t, 0.75, ix["A"]["C"])
	assert.Equal(t, []string{"B", "C"}, ix.Neighbors("A"))
	assert.Nil(t, ix.Neighbors("nope"))
}

// TestBuildDirectedReversed: direction is kept, reversal swaps endpoints.
func TestBuildDirectedReversed(t *testing.T) {
	g := triangle(t)

	ix, err := adjacency.Build(g, adjacency.WithDirected(true))
	require.NoError(t, err)
	_, ok := ix.Weight("B", "A")
	require.False(t, ok)
	w, ok := ix.Weight("A", "B")
	require.True(t, ok)
	require.Equal(t, 0.5, w)

	rev, err := adjacency.Build(g, adjacency.WithDirected(true), adjacency.WithReversed(true))
	require.NoError(t, err)
	_, ok = rev.Weight("A", "B")
	require.False(t, ok)
	require.Equal(t, 0.5, rev["B"]["A"])
	require.Equal(t, []string{"C"}, rev.Neighbors("A"), "C→A is stored as A→C")
}

// TestBuildHeuristic: the heuristic is added to every stored cost.
func TestBuildHeuristic(t *testing.T) {
	h := func(id1, id2 string) float64 {
		if id2 == "C" {
			return 10
		}
		return 0
	}
	ix, err := adjacency.Build(triangle(t), adjacency.WithDirected(true), adjacency.WithHeuristic(h))
	require.NoError(t, err)
	require.Equal(t, 11.0, ix["B"]["C"])
	require.Equal(t, 0.5, ix["A"]["B"])
}

// TestBuildStochastic: non-empty rows sum to 1; empty rows stay empty.
func TestBuildStochastic(t *testing.T) {
	ix, err := adjacency.Build(triangle(t), adjacency.WithStochastic(true))
	require.NoError(t, err)

	for _, id := range []string{"A", "B", "C"} {
		sum := 0.0
		for _, w := range ix[id] {
			sum += w
		}
		require.InDelta(t, 1.0, sum, 1e-12, id)
	}
	require.Empty(t, ix["X"])
}

// TestBuildZeroSumRow: a row whose costs sum to zero is left untouched.
func TestBuildZeroSumRow(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithWeight(2)) // cost 0
	ix, err := adjacency.Build(g, adjacency.WithDirected(true), adjacency.WithStochastic(true))
	require.NoError(t, err)
	require.Equal(t, 0.0, ix["A"]["B"])
}

// TestBuildNilGraph: nil graphs are rejected.
func TestBuildNilGraph(t *testing.T) {
	_, err := adjacency.Build(nil)
	require.ErrorIs(t, err, adjacency.ErrNilGraph)
}

// TestMatrix: rows and columns follow the requested order; gaps are zero.
func TestMatrix(t *testing.T) {
	ix, err := adjacency.Build(triangle(t), adjacency.WithDirected(true))
	require.NoError(t, err)

	m := ix.Matrix([]string{"B", "A"})
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 0.0, m.At(0, 1)) // no B→A
	require.Equal(t, 0.5, m.At(1, 0)) // A→B

	full := ix.Matrix(nil)
	r, _ = full.Dims()
	require.Equal(t, 4, r)

	empty, err := adjacency.Build(core.NewGraph())
	require.NoError(t, err)
	require.Nil(t, empty.Matrix(nil))
}

// TestNegative: weights above 2 produce negative costs that are reported.
func TestNegative(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithWeight(3))
	ix, err := adjacency.Build(g, adjacency.WithDirected(true))
	require.NoError(t, err)

	a, b, ok := ix.Negative()
	require.True(t, ok)
	require.Equal(t, "A", a)
	require.Equal(t, "B", b)
}
