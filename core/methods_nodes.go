// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle (AddNode/RemoveNode), lookups and depth-bounded flattening.
// Determinism:
//   - Nodes() follows insertion order; tombstoned slots are skipped.
//   - Flatten() lists nodes in first-visit order.

package core

// AddNode appends a node with the given id, or returns the existing one.
//
// Implementation:
//   - Stage 1: Reject empty id (ErrEmptyNodeID).
//   - Stage 2: Resolve options into a nodeSpec.
//   - Stage 3: If id exists, only the root designation is applied.
//   - Stage 4: Otherwise allocate the node in the arena and index it.
//
// Behavior highlights:
//   - Idempotent: the same *Node is returned for repeated calls.
//   - Options on a pre-existing node are ignored except WithRoot.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	spec := nodeSpec{radius: DefaultRadius}
	for _, opt := range opts {
		opt(&spec)
	}

	if h, ok := g.index[id]; ok {
		if spec.root {
			g.root = h
		}
		return g.nodes[h], nil
	}

	n := &Node{
		ID:         id,
		Pos:        spec.pos,
		X:          spec.pos.X * g.distance,
		Y:          spec.pos.Y * g.distance,
		Radius:     spec.radius,
		Fixed:      spec.fixed,
		Weight:     spec.weight,
		Centrality: spec.centrality,
		Label:      spec.label,
		Attrs:      spec.attrs,
		handle:     NodeID(len(g.nodes)),
	}
	g.nodes = append(g.nodes, n)
	g.index[id] = n.handle
	g.nodeCount++
	if spec.root {
		g.root = n.handle
	}

	return n, nil
}

// Node returns the node with the given id, or nil when absent.
// Complexity: O(1).
func (g *Graph) Node(id string) *Node {
	h, ok := g.index[id]
	if !ok {
		return nil
	}

	return g.nodes[h]
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Nodes returns the live nodes in insertion order.
// Complexity: O(V) over the arena.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, g.nodeCount)
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, n)
		}
	}

	return out
}

// NodeIDs returns the ids of live nodes in insertion order.
func (g *Graph) NodeIDs() []string {
	out := make([]string, 0, g.nodeCount)
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, n.ID)
		}
	}

	return out
}

// RemoveNode removes the node and cascades: every edge touching it is
// removed and every other node's link to it is pruned.
// It reports whether a node was removed.
//
// Complexity:
//   - Time O(E + Σd) for the edge scan and link pruning.
func (g *Graph) RemoveNode(id string) bool {
	h, ok := g.index[id]
	if !ok {
		return false
	}
	x := g.nodes[h]

	for i, e := range g.edges {
		if e == nil || (e.n1 != h && e.n2 != h) {
			continue
		}
		if e.n2 == h {
			g.nodes[e.n1].links.remove(h)
		}
		if e.n1 == h {
			g.nodes[e.n2].links.remove(h)
		}
		g.edges[i] = nil
		g.edgeCount--
	}

	delete(g.index, id)
	g.nodes[h] = nil
	g.nodeCount--
	x.links = Links{}
	if g.root == h {
		g.root = noHandle
	}
	if g.dragged == h {
		g.dragged = noHandle
	}
	g.maybeCompact()

	return true
}

// Flatten returns the node with the given id and every node reachable from
// it within depth hops, following only traversable links. Depth 0 returns
// just the node; an unknown id returns nil.
//
// A node already reached is visited again when reached with more remaining
// depth, so the result does not depend on link order.
// Complexity: O(V + E) per distinct remaining depth in the worst case.
func (g *Graph) Flatten(id string, depth int, traversable Traversable) []*Node {
	n := g.Node(id)
	if n == nil {
		return nil
	}
	visited := make(map[NodeID]int)
	var order []NodeID
	g.flatten(n, depth, traversable, visited, &order)

	out := make([]*Node, len(order))
	for i, h := range order {
		out[i] = g.nodes[h]
	}

	return out
}

func (g *Graph) flatten(n *Node, depth int, traversable Traversable, visited map[NodeID]int, order *[]NodeID) {
	if _, seen := visited[n.handle]; !seen {
		*order = append(*order, n.handle)
	}
	visited[n.handle] = depth
	if depth < 1 {
		return
	}
	for _, h := range n.links.order {
		if d, seen := visited[h]; seen && d >= depth-1 {
			continue
		}
		if traversable != nil && !traversable(n, g.edges[n.links.edges[h]]) {
			continue
		}
		g.flatten(g.nodes[h], depth-1, traversable, visited, order)
	}
}
