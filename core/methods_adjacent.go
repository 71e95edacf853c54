// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Per-node link index (Links) and the neighborhood queries built on it.
// Determinism:
//   - Links keep first-insertion order of neighbors; re-linking a neighbor
//     replaces its edge without moving it.

package core

// Links is the ordered, de-duplicated set of neighbors of a node, each mapped
// to the edge handle connecting to it.
//
// For a pair a,b the index is kept in sync by AddEdge:
//   - a.links[b] is the edge a→b when it exists, otherwise b→a;
//   - b.links[a] is the edge b→a when it exists, otherwise a→b.
type Links struct {
	order []NodeID
	edges map[NodeID]EdgeID
}

// Len returns the number of linked neighbors.
func (l *Links) Len() int { return len(l.order) }

// Handles returns a copy of the neighbor handles in link order.
func (l *Links) Handles() []NodeID {
	out := make([]NodeID, len(l.order))
	copy(out, l.order)

	return out
}

// Edge returns the edge handle linked to neighbor n.
func (l *Links) Edge(n NodeID) (EdgeID, bool) {
	e, ok := l.edges[n]

	return e, ok
}

// Has reports whether n is linked.
func (l *Links) Has(n NodeID) bool {
	_, ok := l.edges[n]

	return ok
}

func (l *Links) append(n NodeID, e EdgeID) {
	if l.edges == nil {
		l.edges = make(map[NodeID]EdgeID)
	}
	if _, ok := l.edges[n]; !ok {
		l.order = append(l.order, n)
	}
	l.edges[n] = e
}

func (l *Links) remove(n NodeID) bool {
	if _, ok := l.edges[n]; !ok {
		return false
	}
	delete(l.edges, n)
	for i, h := range l.order {
		if h == n {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}

	return true
}

// Links returns the node's neighbors paired with their linking edges, in
// link order. Nil when id is unknown.
// Complexity: O(d).
func (g *Graph) Links(id string) []Link {
	n := g.Node(id)
	if n == nil {
		return nil
	}

	return g.linksOf(n)
}

func (g *Graph) linksOf(n *Node) []Link {
	out := make([]Link, 0, len(n.links.order))
	for _, h := range n.links.order {
		out = append(out, Link{Node: g.nodes[h], Edge: g.edges[n.links.edges[h]]})
	}

	return out
}

// Neighbors returns the nodes linked to id in link order; nil when unknown.
// Complexity: O(d).
func (g *Graph) Neighbors(id string) []*Node {
	n := g.Node(id)
	if n == nil {
		return nil
	}
	out := make([]*Node, 0, len(n.links.order))
	for _, h := range n.links.order {
		out = append(out, g.nodes[h])
	}

	return out
}

// NodeEdges returns every edge from or to id, in edge insertion order.
// Unlike Links it includes both directions of a reciprocal pair.
// Complexity: O(E).
func (g *Graph) NodeEdges(id string) []*Edge {
	n := g.Node(id)
	if n == nil {
		return nil
	}
	var out []*Edge
	for _, e := range g.edges {
		if e != nil && (e.n1 == n.handle || e.n2 == n.handle) {
			out = append(out, e)
		}
	}

	return out
}
