// Package builder provides deterministic topology generators that populate a
// core.Graph: fixtures for tests, examples and the netgraph command line.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new graph, resolved options, constructors in order.
//     – ByKind(kind, n, p): maps "star", "cycle", "path", "wheel", "complete",
//     "grid", "bipartite" and "random" onto constructors.
//   - Topologies (Constructor factories):
//     – Star(n), Wheel(n):      hub "Center" (marked as root) plus leaves / a rim.
//     – Cycle(n), Path(n):      rings and chains over idFn(0..n-1).
//     – Complete(n):            one edge per unordered pair.
//     – CompleteBipartite(m,n): "L0".. × "R0".. (prefixes configurable).
//     – Grid(r,c):              "r,c" lattice placed on its coordinates.
//     – RandomSparse(n,p):      Erdős–Rényi G(n,p), seeded.
//   - Node ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     AlphanumericIDFn, HexIDFn, SymbolNumberIDFn, UUIDIDFn (seeded v4 UUIDs).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical node order, edge order and weights.
//   - Option constructors panic on programmer errors (nil functions, negative
//     constants); constructors return sentinel errors wrapped with the method
//     name and never panic.
//   - Edges are emitted once per pair; core links make every pair traversable
//     in both directions for layout, BFS and DFS.
package builder
