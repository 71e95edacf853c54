// Package centrality scores the nodes of a core.Graph and writes the scores
// back onto the nodes.
//
//   - Degree(g):         distinct neighbors / |V|           → Node.Degree
//   - Eigenvector(g, …): power iteration over the index     → Node.Weight
//   - Betweenness(g, …): Brandes with weighted searches     → Node.Centrality
//
// Eigenvector and Betweenness build a fresh adjacency.Index on every call,
// so costs follow the graph's current edge weights (heavier edges are
// cheaper, see adjacency.Cost).
//
// Eigenvector has no guarantee of convergence (directed cycles may
// oscillate). When the iteration budget runs out the scores are all zero,
// Result.Converged is false and a warning goes to the configured
// charmbracelet/log logger; callers decide whether that matters.
//
// Empty graphs yield empty maps and no error.
//
// Example:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "hub")
//	g.AddEdge("B", "hub")
//	res, _ := centrality.Eigenvector(g, centrality.WithSeed(1))
//	// res.Scores["hub"] == 1, leaves score 0
//	bc, _ := centrality.Betweenness(g)
//	// bc["hub"] == 1
package centrality
