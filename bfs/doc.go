// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Visit(node) is called once per node as it leaves the queue; returning
//     true stops the search and BFS reports true.
//   - Traversable(node, edge) gates each link; links are symmetric, so
//     directed search is a filter on edge.Node1.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Links keep the order in which neighbors were first connected, and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and link seen at most once)
//   - Memory: O(V)       (queue and visited set)
//
// Usage
//
//	stopped, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithVisit(func(n *core.Node) bool { return n.ID == "goal" }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation or ctx.Err()
//	}
package bfs
