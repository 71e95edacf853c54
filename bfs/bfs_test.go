package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/bfs"
	"github.com/katalvlaran/netgraph/core"
)

// tree builds A-{B,C}, B-{D,E}, C-F.
func tree(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"B", "E"}, {"C", "F"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

func recorder(order *[]string) bfs.Option {
	return bfs.WithVisit(func(n *core.Node) bool {
		*order = append(*order, n.ID)
		return false
	})
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), "missing")
	require.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	_, err = bfs.BFS(tree(t), "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_LevelOrder: nodes are visited level by level in link order.
func TestBFS_LevelOrder(t *testing.T) {
	var order []string
	stopped, err := bfs.BFS(tree(t), "A", recorder(&order))
	require.NoError(t, err)
	require.False(t, stopped)
	require.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, order)
}

// TestBFS_Stop: a true Visit ends the search immediately.
func TestBFS_Stop(t *testing.T) {
	var order []string
	stopped, err := bfs.BFS(tree(t), "A", bfs.WithVisit(func(n *core.Node) bool {
		order = append(order, n.ID)
		return n.ID == "C"
	}))
	require.NoError(t, err)
	require.True(t, stopped)
	require.Equal(t, []string{"A", "B", "C"}, order)
}

// TestBFS_MaxDepth: nodes beyond the depth limit are never visited.
func TestBFS_MaxDepth(t *testing.T) {
	var order []string
	_, err := bfs.BFS(tree(t), "A", recorder(&order), bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, order)
}

// TestBFS_Traversable: a forward filter from a leaf reaches nothing else.
func TestBFS_Traversable(t *testing.T) {
	forward := func(n *core.Node, e *core.Edge) bool { return e.Node1 == n.ID }

	var order []string
	_, err := bfs.BFS(tree(t), "B", recorder(&order), bfs.WithTraversable(forward))
	require.NoError(t, err)
	require.Equal(t, []string{"B", "D", "E"}, order)
}

// TestBFS_Cycle: each node is visited once even when reachable twice.
func TestBFS_Cycle(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, _ = g.AddEdge(p[0], p[1])
	}
	var order []string
	_, err := bfs.BFS(g, "A", recorder(&order))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, order)
}

// TestBFS_Canceled: a done context aborts with its error.
func TestBFS_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(tree(t), "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
