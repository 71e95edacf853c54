// Package dfs_test contains unit tests for DFS traversal, the stopping visit
// hook, traversable filters, cancellation and path enumeration.
package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/dfs"
)

func build(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

// collect returns a Visit hook recording discovery order.
func collect(order *[]string) func(*core.Node) bool {
	return func(n *core.Node) bool {
		*order = append(*order, n.ID)
		return false
	}
}

// TestDFS_Errors verifies that invalid inputs are rejected.
func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph(), "missing")
	require.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
}

// TestDFS_Order: depth-first in link order; each node visited once.
func TestDFS_Order(t *testing.T) {
	//   A - B - D
	//   |   |
	//   C --+
	g := build(t, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"}, [2]string{"C", "B"})

	var order []string
	stopped, err := dfs.DFS(g, "A", dfs.WithVisit(collect(&order)))
	require.NoError(t, err)
	require.False(t, stopped)
	require.Equal(t, []string{"A", "B", "D", "C"}, order)
}

// TestDFS_Stop: Visit returning true stops the traversal at once.
func TestDFS_Stop(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "D"})

	var order []string
	stopped, err := dfs.DFS(g, "A", dfs.WithVisit(func(n *core.Node) bool {
		order = append(order, n.ID)
		return n.ID == "B"
	}))
	require.NoError(t, err)
	require.True(t, stopped)
	require.Equal(t, []string{"A", "B"}, order)
}

// TestDFS_StopOnLeaf: a stop raised by a node without links still reports true.
func TestDFS_StopOnLeaf(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode("solo")

	stopped, err := dfs.DFS(g, "solo", dfs.WithVisit(func(*core.Node) bool { return true }))
	require.NoError(t, err)
	require.True(t, stopped)
}

// TestDFS_Directed: the forward filter only follows Node1→Node2 edges.
func TestDFS_Directed(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"C", "B"}, [2]string{"B", "D"})
	forward := func(n *core.Node, e *core.Edge) bool { return e.Node1 == n.ID }

	var order []string
	_, err := dfs.DFS(g, "A", dfs.WithVisit(collect(&order)), dfs.WithTraversable(forward))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, order)
}

// TestDFS_Canceled: a done context aborts before the first visit.
func TestDFS_Canceled(t *testing.T) {
	g := build(t, [2]string{"A", "B"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	visited := 0
	_, err := dfs.DFS(g, "A", dfs.WithContext(ctx), dfs.WithVisit(func(*core.Node) bool {
		visited++
		return false
	}))
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, visited)
}

// TestPaths: simple paths bounded by node count, shortest first.
func TestPaths(t *testing.T) {
	// Square A-B-C-D-A with a chord A-C.
	g := build(t,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"},
		[2]string{"D", "A"}, [2]string{"A", "C"},
	)

	got := dfs.Paths(g, "A", "C", dfs.DefaultMaxLength)
	require.Equal(t, [][]string{
		{"A", "C"},
		{"A", "B", "C"},
		{"A", "D", "C"},
	}, got)

	require.Equal(t, [][]string{{"A", "C"}}, dfs.Paths(g, "A", "C", 2))
	require.Empty(t, dfs.Paths(g, "A", "C", 1))
	require.Equal(t, [][]string{{"A"}}, dfs.Paths(g, "A", "A", 4))
	require.Empty(t, dfs.Paths(g, "X", "A", 4))
}

// TestPathsLongerBound: raising the bound admits four-node detours.
func TestPathsLongerBound(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"A", "D"})

	got := dfs.Paths(g, "A", "D", 4)
	require.Equal(t, [][]string{{"A", "D"}, {"A", "B", "C", "D"}}, got)
	require.Equal(t, [][]string{{"A", "D"}}, dfs.Paths(g, "A", "D", 3))
}

// TestPathEdges: edges along a path; nil where a hop is unlinked.
func TestPathEdges(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"C", "B"})
	_, _ = g.AddNode("X")

	es := dfs.PathEdges(g, []string{"A", "B", "C", "X"})
	require.Len(t, es, 3)
	require.Same(t, g.DirectedEdge("A", "B"), es[0])
	require.Same(t, g.DirectedEdge("C", "B"), es[1], "reverse hops resolve to the existing edge")
	require.Nil(t, es[2])

	require.Nil(t, dfs.PathEdges(g, []string{"A"}))
}
