// Package dijkstra finds cheapest paths in a core.Graph.
//
// Overview:
//
//   - ShortestPath returns the ids on the cheapest path between two nodes.
//   - ShortestPathCost additionally returns the total traversal cost.
//   - ShortestPaths returns the cheapest path from one node to every node,
//     with nil marking unreachable nodes.
//
// Cost model:
//
//	cost(u→v) = 1 − 0.5·edge.Weight + heuristic(u, v)
//
// Edge weight expresses importance, so heavier edges are cheaper. Costs are
// derived per call through adjacency.Build; nothing is cached on the graph.
// Undirected search (the default) mirrors every edge with the same cost.
//
// Determinism:
//
//   - Neighbors are relaxed in sorted id order and heap ties pop in push
//     order, so equal-cost alternatives always resolve the same way.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:     nil *core.Graph.
//   - ErrNodeNotFound: source or target id absent from the graph.
//   - ErrUnreachable:  ShortestPath target not reachable from the source.
//   - ErrNegativeCost: some effective cost is negative (edge weight > 2 or a
//     negative heuristic); detected by an O(E) pre-scan.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Example:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B")
//	g.AddEdge("B", "C")
//	path, err := dijkstra.ShortestPath(g, "A", "C")
//	// path == [A B C]
package dijkstra
