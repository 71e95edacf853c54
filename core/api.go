// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade exposing read-only getters and graph statistics.
// Policy:
//   - No algorithms here; mutation lives in methods_*.go, layout glue in layout.go.
//   - Every getter is O(1) unless stated otherwise.

package core

// Err returns the first option violation recorded by NewGraph, or nil.
func (g *Graph) Err() error { return g.err }

// Distance returns the layout-to-screen scale factor.
func (g *Graph) Distance() float64 { return g.distance }

// Layout returns the attached layout strategy.
func (g *Graph) Layout() Layout { return g.layout }

// Len returns the number of live nodes.
func (g *Graph) Len() int { return g.nodeCount }

// EdgeLen returns the number of live edges.
func (g *Graph) EdgeLen() int { return g.edgeCount }

// Root returns the node designated with WithRoot, or nil.
func (g *Graph) Root() *Node {
	if g.root == noHandle {
		return nil
	}

	return g.nodes[g.root]
}

// Dragged returns the node currently held by Drag, or nil.
func (g *Graph) Dragged() *Node {
	if g.dragged == noHandle {
		return nil
	}

	return g.nodes[g.dragged]
}

// NodeByHandle resolves an arena handle; nil for stale or out-of-range handles.
func (g *Graph) NodeByHandle(h NodeID) *Node {
	if h < 0 || int(h) >= len(g.nodes) {
		return nil
	}

	return g.nodes[h]
}

// EdgeByHandle resolves an arena handle; nil for stale or out-of-range handles.
func (g *Graph) EdgeByHandle(h EdgeID) *Edge {
	if h < 0 || int(h) >= len(g.edges) {
		return nil
	}

	return g.edges[h]
}

// Endpoints returns the live nodes joined by e in Node1→Node2 order.
// Both are nil when e does not belong to g.
// Complexity: O(1).
func (g *Graph) Endpoints(e *Edge) (*Node, *Node) {
	if e == nil || g.EdgeByHandle(e.handle) != e {
		return nil, nil
	}

	return g.nodes[e.n1], g.nodes[e.n2]
}

// Stats is a snapshot of graph size and density.
type Stats struct {
	Nodes    int
	Edges    int
	Leaves   int // nodes with exactly one link
	Isolated int // nodes with no links
	Density  float64
}

// Stats returns a Stats snapshot.
// Complexity: O(V).
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: g.nodeCount, Edges: g.edgeCount, Density: g.Density()}
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		switch n.links.Len() {
		case 0:
			s.Isolated++
		case 1:
			s.Leaves++
		}
	}

	return s
}
