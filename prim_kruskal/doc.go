// Package prim_kruskal extracts the backbone of a core.Graph: the spanning
// tree whose total traversal cost is minimal.
//
// Edges are treated as undirected and priced like every other engine in the
// module: an edge of weight w costs adjacency.Cost(w) = 1 − 0.5·w. Heavier
// edges are cheaper, so the minimum spanning tree keeps the strongest
// connections and drops the redundant weak ones. A reciprocal pair (a→b and
// b→a) offers two candidate edges; the cheaper one wins.
//
// Algorithms:
//
//   - Kruskal(g): stable sort of all edges by cost, then union-find.
//     Ties keep edge insertion order. O(E log E).
//   - Prim(g, root): grows one tree from root with a min-heap of candidate
//     edges; ties are broken by insertion order. O(E log V).
//   - Compute(g, opts...): dispatches on WithMethod (Kruskal by default).
//
// Both return the tree edges in the order they were accepted and the total
// cost. The totals always agree; the edge sets agree when costs are distinct.
//
// Errors (sentinel):
//
//   - ErrNilGraph:      graph pointer is nil.
//   - ErrEmptyRoot:     Prim without a root id.
//   - ErrNodeNotFound:  Prim root is not in the graph.
//   - ErrDisconnected:  the graph is empty or has more than one component.
//     Use core.Graph.Split to compute one tree per component.
//   - ErrUnknownMethod: Compute with an unsupported method name.
package prim_kruskal
