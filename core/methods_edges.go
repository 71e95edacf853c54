// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle (AddEdge/RemoveEdge/Remove) and edge lookups.
// Determinism:
//   - Edges() follows insertion order; tombstoned slots are skipped.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends the edge id1→id2, creating missing endpoint nodes.
//
// Implementation:
//   - Stage 1: Resolve and validate options (ErrNegativeWeight).
//   - Stage 2: AddNode both endpoints (ErrEmptyNodeID).
//   - Stage 3: If n1 already links n2 through an edge n1→n2, return it.
//   - Stage 4: Append the edge and sync both link indices.
//
// Behavior highlights:
//   - At most one edge per directed pair; the reverse direction is independent.
//   - n2's link to n1 keeps pointing at the reverse edge when one exists.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(id1, id2 string, opts ...EdgeOption) (*Edge, error) {
	spec := edgeSpec{length: DefaultEdgeLength}
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.weight < 0 || math.IsNaN(spec.weight) {
		return nil, fmt.Errorf("AddEdge %s→%s: weight=%g: %w", id1, id2, spec.weight, ErrNegativeWeight)
	}

	n1, err := g.AddNode(id1)
	if err != nil {
		return nil, fmt.Errorf("AddEdge: %w", err)
	}
	n2, err := g.AddNode(id2)
	if err != nil {
		return nil, fmt.Errorf("AddEdge: %w", err)
	}

	var existing *Edge
	if eh, ok := n1.links.Edge(n2.handle); ok {
		existing = g.edges[eh]
		if existing.n1 == n1.handle && existing.n2 == n2.handle {
			return existing, nil
		}
	}

	e := &Edge{
		Node1:  n1.ID,
		Node2:  n2.ID,
		Weight: spec.weight,
		Length: spec.length,
		Type:   spec.typ,
		Attrs:  spec.attrs,
		handle: EdgeID(len(g.edges)),
		n1:     n1.handle,
		n2:     n2.handle,
	}
	g.edges = append(g.edges, e)
	g.edgeCount++

	n1.links.append(n2.handle, e.handle)
	if existing != nil {
		n2.links.append(n1.handle, existing.handle)
	} else {
		n2.links.append(n1.handle, e.handle)
	}

	return e, nil
}

// Edge returns the edge linking id1 to id2, or nil.
//
// The lookup goes through id1's link index, so Edge(b, a) yields the edge
// b→a when it exists and falls back to a→b otherwise.
// Complexity: O(1).
func (g *Graph) Edge(id1, id2 string) *Edge {
	n1, n2 := g.Node(id1), g.Node(id2)
	if n1 == nil || n2 == nil {
		return nil
	}
	eh, ok := n1.links.Edge(n2.handle)
	if !ok {
		return nil
	}

	return g.edges[eh]
}

// DirectedEdge returns the edge id1→id2 only, or nil.
// Complexity: O(1).
func (g *Graph) DirectedEdge(id1, id2 string) *Edge {
	e := g.Edge(id1, id2)
	if e == nil || e.Node1 != id1 || e.Node2 != id2 {
		return nil
	}

	return e
}

// Edges returns the live edges in insertion order.
// Complexity: O(E) over the arena.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.edgeCount)
	for _, e := range g.edges {
		if e != nil {
			out = append(out, e)
		}
	}

	return out
}

// RemoveEdge removes the edge id1→id2 and reports whether it existed.
//
// Both endpoints' link indices are repaired: when the reverse edge id2→id1
// survives, both links are re-pointed to it; otherwise the pair is unlinked.
// Complexity: O(d) for link pruning.
func (g *Graph) RemoveEdge(id1, id2 string) bool {
	e := g.DirectedEdge(id1, id2)
	if e == nil {
		return false
	}
	g.removeEdge(e)

	return true
}

// Remove removes a *Node (cascading) or an *Edge that belongs to g.
// It reports whether anything was removed.
func (g *Graph) Remove(x Element) bool {
	switch v := x.(type) {
	case *Node:
		if v == nil || g.NodeByHandle(v.handle) != v {
			return false
		}
		return g.RemoveNode(v.ID)
	case *Edge:
		if v == nil || g.EdgeByHandle(v.handle) != v {
			return false
		}
		g.removeEdge(v)
		return true
	}

	return false
}

// removeEdge tombstones e and repairs the endpoint links.
func (g *Graph) removeEdge(e *Edge) {
	g.edges[e.handle] = nil
	g.edgeCount--

	n1, n2 := g.nodes[e.n1], g.nodes[e.n2]
	var reverse *Edge
	if eh, ok := n2.links.Edge(n1.handle); ok {
		if r := g.edges[eh]; r != nil && r != e && r.n1 == e.n2 && r.n2 == e.n1 {
			reverse = r
		}
	}

	if reverse != nil {
		n1.links.append(n2.handle, reverse.handle)
		n2.links.append(n1.handle, reverse.handle)
	} else {
		n1.links.remove(n2.handle)
		n2.links.remove(n1.handle)
	}
	g.maybeCompact()
}

// addEdgeCopy adds id1→id2 carrying e's weight, length, type and attributes.
func (g *Graph) addEdgeCopy(e *Edge, id1, id2 string) error {
	_, err := g.AddEdge(id1, id2,
		WithWeight(e.Weight),
		WithLength(e.Length),
		WithType(e.Type),
		withEdgeAttrs(cloneAttrs(e.Attrs)),
	)

	return err
}

func withEdgeAttrs(attrs map[string]string) EdgeOption {
	return func(s *edgeSpec) { s.attrs = attrs }
}
