// Package dfs provides depth-first traversal and bounded path enumeration
// for core.Graph.
//
// What:
//
//   - DFS(g, start, opts...) walks node links recursively from start,
//     calling Visit on discovery. Visit returning true stops everything and
//     DFS reports true.
//   - Traversable(node, edge) gates each link. Links are symmetric (a node
//     links every neighbor regardless of edge direction), so directed walks
//     are expressed as a filter:
//
//     dfs.WithTraversable(func(n *core.Node, e *core.Edge) bool {
//         return e.Node1 == n.ID
//     })
//
//   - Paths(g, id1, id2, maxLength) enumerates simple paths with at most
//     maxLength nodes, shortest first (DefaultMaxLength is 4).
//   - PathEdges(g, path) maps a path back to its edges, nil where unlinked.
//
// Why:
//
//   - Reachability checks, early-exit searches ("is there a node with …"),
//     and "how are these two nodes related" queries over small hops.
//
// Complexity:
//
//   - DFS:   O(V + E) time, O(V) memory.
//   - Paths: O(b^L) for branching factor b and bound L.
//
// Errors:
//
//   - ErrGraphNil, ErrStartNodeNotFound, context errors from WithContext.
package dfs
