// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Subset copies, Clear, and arena compaction.
// Determinism:
//   - Copy preserves the source insertion order of nodes and edges.

package core

// compactMinDead is the tombstone count below which compaction is skipped.
const compactMinDead = 64

// Copy returns an independent Graph holding the nodes with the given ids
// (every node when none are given) and the edges whose endpoints both
// survive the filter. Unknown ids are ignored.
//
// Behavior highlights:
//   - The layout is cloned and starts from a reset state; positions are not copied.
//   - Radius, Fixed, Label and Attrs are copied; Attrs are deep-copied.
//   - The root designation is kept when the root is part of the subset.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func (g *Graph) Copy(ids ...string) *Graph {
	out := NewGraph(WithDistance(g.distance), WithLayout(g.layout.Clone()))

	var src []*Node
	if len(ids) == 0 {
		src = g.Nodes()
	} else {
		keep := make(map[NodeID]bool, len(ids))
		for _, id := range ids {
			if h, ok := g.index[id]; ok {
				keep[h] = true
			}
		}
		// Preserve source order regardless of argument order.
		for _, n := range g.nodes {
			if n != nil && keep[n.handle] {
				src = append(src, n)
			}
		}
	}

	for _, n := range src {
		opts := []NodeOption{WithRadius(n.Radius), WithLabel(n.Label)}
		if n.Fixed {
			opts = append(opts, WithFixed())
		}
		if g.root == n.handle {
			opts = append(opts, WithRoot())
		}
		c, _ := out.AddNode(n.ID, opts...)
		c.Attrs = cloneAttrs(n.Attrs)
	}

	for _, e := range g.edges {
		if e == nil || !out.HasNode(e.Node1) || !out.HasNode(e.Node2) {
			continue
		}
		// Weights were validated when e was added; the copy cannot fail.
		_ = out.addEdgeCopy(e, e.Node1, e.Node2)
	}

	return out
}

// Clear removes every node and edge, forgets root and dragged node and
// resets the layout. Distance and the layout strategy are kept.
// Complexity: O(1) plus the layout reset.
func (g *Graph) Clear() {
	g.nodes = nil
	g.edges = nil
	g.index = make(map[string]NodeID)
	g.nodeCount, g.edgeCount = 0, 0
	g.root, g.dragged = noHandle, noHandle
	g.layout.Reset(g)
}

// maybeCompact rebuilds the arenas without tombstones once dead slots
// outnumber live ones. Handles held by callers become stale afterwards.
func (g *Graph) maybeCompact() {
	deadNodes := len(g.nodes) - g.nodeCount
	deadEdges := len(g.edges) - g.edgeCount
	if (deadNodes < compactMinDead || deadNodes <= g.nodeCount) &&
		(deadEdges < compactMinDead || deadEdges <= g.edgeCount) {
		return
	}
	g.compact()
}

func (g *Graph) compact() {
	nodeMap := make([]NodeID, len(g.nodes))
	nodes := make([]*Node, 0, g.nodeCount)
	for i, n := range g.nodes {
		nodeMap[i] = noHandle
		if n == nil {
			continue
		}
		nodeMap[i] = NodeID(len(nodes))
		n.handle = nodeMap[i]
		g.index[n.ID] = n.handle
		nodes = append(nodes, n)
	}

	edgeMap := make([]EdgeID, len(g.edges))
	edges := make([]*Edge, 0, g.edgeCount)
	for i, e := range g.edges {
		edgeMap[i] = -1
		if e == nil {
			continue
		}
		edgeMap[i] = EdgeID(len(edges))
		e.handle = edgeMap[i]
		e.n1, e.n2 = nodeMap[e.n1], nodeMap[e.n2]
		edges = append(edges, e)
	}

	for _, n := range nodes {
		links := Links{}
		for _, h := range n.links.order {
			links.append(nodeMap[h], edgeMap[n.links.edges[h]])
		}
		n.links = links
	}

	if g.root != noHandle {
		g.root = nodeMap[g.root]
	}
	if g.dragged != noHandle {
		g.dragged = nodeMap[g.dragged]
	}
	g.nodes, g.edges = nodes, edges
}
