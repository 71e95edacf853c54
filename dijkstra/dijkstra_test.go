// Package dijkstra_test contains unit tests for the shortest-path search:
// validation, unit-cost cycles, weighted shortcuts, directed edges,
// heuristics and the all-targets variant.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/adjacency"
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/dijkstra"
)

// cycle4 builds A→B→C→D→A with unit costs.
func cycle4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_MissingEndpoints(t *testing.T) {
	g := cycle4(t)
	_, err := dijkstra.ShortestPath(g, "X", "A")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	_, err = dijkstra.ShortestPath(g, "A", "X")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	_, err = dijkstra.ShortestPaths(g, "X")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

func TestShortestPath_NegativeCost(t *testing.T) {
	g := cycle4(t)
	_, err := g.AddEdge("A", "C", core.WithWeight(3))
	require.NoError(t, err)

	_, err = dijkstra.ShortestPath(g, "A", "C")
	require.ErrorIs(t, err, dijkstra.ErrNegativeCost)
}

// ------------------------------------------------------------------------
// 2. Paths
// ------------------------------------------------------------------------

// TestShortestPath_Cycle: A→C in a unit 4-cycle has three nodes and cost 2.
func TestShortestPath_Cycle(t *testing.T) {
	path, cost, err := dijkstra.ShortestPathCost(cycle4(t), "A", "C")
	require.NoError(t, err)
	require.Len(t, path, 3)
	require.Equal(t, "A", path[0])
	require.Equal(t, "C", path[2])
	require.Equal(t, 2.0, cost)
	require.Equal(t, []string{"A", "B", "C"}, path, "ties resolve in sorted neighbor order")
}

// TestShortestPath_Self: a node reaches itself with a single-element path.
func TestShortestPath_Self(t *testing.T) {
	path, cost, err := dijkstra.ShortestPathCost(cycle4(t), "B", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, path)
	require.Zero(t, cost)
}

// TestShortestPath_HeavyEdgeIsCheaper: weight 1 halves the cost of A→D→C.
func TestShortestPath_HeavyEdgeIsCheaper(t *testing.T) {
	g := cycle4(t)
	g.DirectedEdge("D", "A").Weight = 1
	g.DirectedEdge("C", "D").Weight = 1

	path, cost, err := dijkstra.ShortestPathCost(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "D", "C"}, path)
	require.Equal(t, 1.0, cost)
}

// TestShortestPath_Directed: one-way edges force the long way round.
func TestShortestPath_Directed(t *testing.T) {
	g := cycle4(t)

	path, err := dijkstra.ShortestPath(g, "B", "A", dijkstra.WithDirected(true))
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C", "D", "A"}, path)

	path, err = dijkstra.ShortestPath(g, "B", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "A"}, path)
}

// TestShortestPath_Unreachable: disconnected components yield ErrUnreachable.
func TestShortestPath_Unreachable(t *testing.T) {
	g := cycle4(t)
	_, err := g.AddEdge("X", "Y")
	require.NoError(t, err)

	_, err = dijkstra.ShortestPath(g, "A", "Y")
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

// TestShortestPath_Heuristic: penalizing B reroutes through D.
func TestShortestPath_Heuristic(t *testing.T) {
	avoidB := func(_, id2 string) float64 {
		if id2 == "B" {
			return 5
		}
		return 0
	}
	path, err := dijkstra.ShortestPath(cycle4(t), "A", "C", dijkstra.WithHeuristic(avoidB))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "D", "C"}, path)
}

// TestShortestPaths: every node is a key; unreachable nodes map to nil.
func TestShortestPaths(t *testing.T) {
	g := cycle4(t)
	_, err := g.AddNode("X")
	require.NoError(t, err)

	paths, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)
	require.Len(t, paths, 5)
	require.Equal(t, []string{"A"}, paths["A"])
	require.Equal(t, []string{"A", "B"}, paths["B"])
	require.Equal(t, []string{"A", "B", "C"}, paths["C"])
	require.Equal(t, []string{"A", "D"}, paths["D"])

	require.Contains(t, paths, "X")
	require.Nil(t, paths["X"])
	require.False(t, dijkstra.Reachable(paths, "X"))
	require.True(t, dijkstra.Reachable(paths, "C"))
	require.False(t, dijkstra.Reachable(paths, "nope"))
}

// TestShortestPaths_MatchesAllPairs: per-source costs agree with Floyd–Warshall.
func TestShortestPaths_MatchesAllPairs(t *testing.T) {
	g := cycle4(t)
	_, _ = g.AddEdge("A", "C", core.WithWeight(0.5))
	_, _ = g.AddEdge("B", "D", core.WithWeight(1.5))

	all, err := adjacency.AllPairs(g)
	require.NoError(t, err)
	for _, u := range g.NodeIDs() {
		for _, v := range g.NodeIDs() {
			_, cost, err := dijkstra.ShortestPathCost(g, u, v)
			require.NoError(t, err)
			want, ok := all.Distance(u, v)
			require.True(t, ok)
			require.InDelta(t, want, cost, 1e-12, "%s→%s", u, v)
		}
	}
}
