// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for netgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures (triangles, paths, stars).
//   - Provide a scripted Pointer for Drag tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"
	NodeF = "F"
	NodeX = "X"
)

// pair is a directed edge fixture.
type pair struct{ from, to string }

// buildGraph adds the given edges in order to a fresh graph.
func buildGraph(t *testing.T, edges ...pair) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.Err())
	for _, p := range edges {
		_, err := g.AddEdge(p.from, p.to)
		require.NoError(t, err, "AddEdge(%s,%s)", p.from, p.to)
	}

	return g
}

// ids maps nodes to their IDs, preserving order.
func ids(nodes []*core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}

	return out
}

// edgeKeys renders edges as "A→B" strings, preserving order.
func edgeKeys(edges []*core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Node1 + "→" + e.Node2
	}

	return out
}

// assertLinksMirrorEdges checks that every link is backed by a live edge
// between the same two nodes and every edge is reflected in both link indices.
func assertLinksMirrorEdges(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, n := range g.Nodes() {
		for _, l := range g.Links(n.ID) {
			require.NotNil(t, l.Node, "dangling link on %s", n.ID)
			require.NotNil(t, l.Edge, "link %s→%s without edge", n.ID, l.Node.ID)
			ends := map[string]bool{l.Edge.Node1: true, l.Edge.Node2: true}
			require.True(t, ends[n.ID] && ends[l.Node.ID], "link %s→%s backed by %s→%s",
				n.ID, l.Node.ID, l.Edge.Node1, l.Edge.Node2)
		}
	}
	for _, e := range g.Edges() {
		require.NotNil(t, g.Edge(e.Node1, e.Node2), "edge %s→%s missing from links", e.Node1, e.Node2)
		require.NotNil(t, g.Edge(e.Node2, e.Node1), "edge %s→%s missing from reverse links", e.Node1, e.Node2)
	}
}

// scriptedPointer is a Pointer with fixed state.
type scriptedPointer struct {
	pressed, dragged bool
	x, y             float64
}

func (p scriptedPointer) Pressed() bool { return p.pressed }
func (p scriptedPointer) Dragged() bool { return p.dragged }
func (p scriptedPointer) Position() (float64, float64) { return p.x, p.y }
