// Package core provides the mutable in-memory Graph at the heart of netgraph:
// an arena of nodes and edges addressed by integer handles, an attached
// layout strategy, and the structural utilities built on top of them.
//
// The Graph G = (V,E) supports:
//
//   - Idempotent node insertion (AddNode returns the existing node)
//   - At most one edge per directed pair (AddEdge returns the existing edge);
//     the reverse direction may carry its own edge
//   - Per-node link index: ordered, de-duplicated neighbors with O(1) edge lookup
//   - Cascading node removal (edges and neighbor links are pruned)
//   - Subset copies, connected components (Split), pruning and fringe detection
//   - Greedy cliques and rewiring helpers (Unlink, Redirect, Cut, Insert)
//   - A pluggable Layout driven by Update, with hit-testing and dragging
//
// Why an arena?
//
//	Nodes reference edges and edges reference nodes. Storing both in slices
//	and relating them by handles keeps ownership in one place: the Graph.
//	Removal tombstones a slot; tombstones are compacted once they outnumber
//	live entries, so handles are only stable between mutations.
//
// Configuration Options (GraphOption):
//
//	– WithDistance(d)
//	    Scale from layout units to screen units (default 10).
//	– WithLayout(l)
//	    Strategy driven by Update; StaticLayout when omitted.
//	    The layout package provides a force-directed Spring and a
//	    layout.NewGraph shortcut that attaches it.
//
// Node options: WithRadius, WithFixed, WithPosition, WithLabel, WithAttr,
// WithRoot, WithNodeWeight, WithNodeCentrality.
// Edge options: WithWeight, WithLength, WithType, WithEdgeAttr.
//
// Concurrency:
//
//	A Graph has a single logical owner. It carries no locks: mutation must not
//	interleave with Update or with algorithms reading the same instance.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B")
//	g.AddEdge("B", "D")
//	g.AddEdge("D", "C")
//	g.AddEdge("C", "A")
//	fmt.Println(g.Len(), g.EdgeLen(), g.Density()) // 4 4 0.666…
package core
