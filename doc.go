// Package netgraph is an in-memory graph analytics and layout engine: a
// mutable node/edge network with force-directed layout, shortest paths,
// traversal and centrality scoring.
//
// The root package holds no code; everything lives in subpackages:
//
//	core/         — Graph, Node, Edge in a handle arena; Layout interface,
//	                topology utilities (copy, prune, split, cliques, rewiring)
//	layout/       — Spring force-directed layout
//	adjacency/    — weighted adjacency index, gonum matrix view, all-pairs costs
//	dijkstra/     — single-source shortest paths
//	dfs/, bfs/    — traversals with visit/traversable hooks; bounded path enumeration
//	centrality/   — degree, eigenvector (power iteration), betweenness (Brandes)
//	prim_kruskal/ — minimum-cost spanning tree (the graph's backbone)
//	builder/      — deterministic topology generators for tests and the CLI
//	cmd/netgraph  — command-line front end
//
// Quick example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := layout.NewGraph()
//	g.AddEdge("A", "B")
//	g.AddEdge("B", "D")
//	g.AddEdge("D", "C")
//	g.AddEdge("C", "A")
//	g.UpdateDefault()
//	path, _ := dijkstra.ShortestPath(g, "A", "D")
//
// Library packages never perform I/O; the graph is not safe for concurrent
// mutation.
//
//	go install github.com/katalvlaran/netgraph/cmd/netgraph@latest
package netgraph
