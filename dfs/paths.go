// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: Brute-force enumeration of bounded simple paths, and the edges
// along a node-id path.
// Determinism:
//   - Neighbors are explored in link order and results are stably sorted
//     by length, so equal-length paths keep discovery order.

package dfs

import (
	"sort"

	"github.com/katalvlaran/netgraph/core"
)

// Paths returns the simple paths from id1 to id2 holding at most maxLength
// nodes, shortest first. Links are followed in both directions. An unknown
// id1 (or a non-positive maxLength) yields no paths; id1 == id2 yields
// [[id1]].
//
// Performance drops exponentially with maxLength.
func Paths(g *core.Graph, id1, id2 string, maxLength int) [][]string {
	if g == nil {
		return nil
	}
	var out [][]string
	collectPaths(g, id1, id2, maxLength, nil, &out)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) < len(out[j]) })

	return out
}

// collectPaths extends path with id and recurses into unseen neighbors.
// A branch is abandoned once path already holds maxLength nodes.
func collectPaths(g *core.Graph, id, target string, maxLength int, path []string, out *[][]string) {
	if len(path) >= maxLength || !g.HasNode(id) {
		return
	}
	next := make([]string, len(path)+1)
	copy(next, path)
	next[len(path)] = id
	if id == target {
		*out = append(*out, next)
		return
	}

	seen := make(map[string]struct{}, len(next))
	for _, p := range next {
		seen[p] = struct{}{}
	}
	for _, nb := range g.Neighbors(id) {
		if _, ok := seen[nb.ID]; !ok {
			collectPaths(g, nb.ID, target, maxLength, next, out)
		}
	}
}

// PathEdges returns, for each consecutive pair in path, the edge linking
// them (resolved like Graph.Edge), or nil where the pair is unlinked.
// Paths with fewer than two nodes yield nil.
func PathEdges(g *core.Graph, path []string) []*core.Edge {
	if g == nil || len(path) < 2 {
		return nil
	}
	out := make([]*core.Edge, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		out[i] = g.Edge(path[i], path[i+1])
	}

	return out
}
