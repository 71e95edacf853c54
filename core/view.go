// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Structural views over a graph: pruning, fringe, density classes,
// ranking, partitioning into connected components and cliques.
// Determinism:
//   - Results follow node insertion order unless a sort order is documented.

package core

import (
	"sort"
	"strings"
)

// Density thresholds separating sparse and dense graphs.
const (
	SparseThreshold = 0.35
	DenseThreshold  = 0.65
)

// Order selects the node metric used by Sorted.
type Order int

const (
	// ByWeight ranks nodes by eigenvector centrality.
	ByWeight Order = iota
	// ByCentrality ranks nodes by betweenness centrality.
	ByCentrality
	// ByDegree ranks nodes by degree centrality.
	ByDegree
)

func (o Order) metric(n *Node) float64 {
	switch o {
	case ByCentrality:
		return n.Centrality
	case ByDegree:
		return n.Degree
	default:
		return n.Weight
	}
}

// Prune removes every node with at most minDegree incident edges and
// returns the number of removed nodes. Edge counts are taken once before
// any removal.
// Complexity: O(V + E) plus the cascade of each removal.
func (g *Graph) Prune(minDegree int) int {
	count := make(map[NodeID]int, g.nodeCount)
	for _, e := range g.edges {
		if e == nil {
			continue
		}
		count[e.n1]++
		count[e.n2]++
	}
	var doomed []string
	for _, n := range g.nodes {
		if n != nil && count[n.handle] <= minDegree {
			doomed = append(doomed, n.ID)
		}
	}
	for _, id := range doomed {
		g.RemoveNode(id)
	}

	return len(doomed)
}

// Fringe returns the de-duplicated union of Flatten(leaf, depth) over all
// leaf nodes (nodes with exactly one link). Depth 0 yields the leaves only.
// Complexity: O(L · (V + E)) for L leaves.
func (g *Graph) Fringe(depth int, traversable Traversable) []*Node {
	seen := make(map[NodeID]bool)
	var out []*Node
	for _, n := range g.nodes {
		if n == nil || n.links.Len() != 1 {
			continue
		}
		for _, m := range g.Flatten(n.ID, depth, traversable) {
			if !seen[m.handle] {
				seen[m.handle] = true
				out = append(out, m)
			}
		}
	}

	return out
}

// Density returns 2|E| / (|V|(|V|−1)). For |V| ≤ 1 the result is NaN or
// ±Inf; callers guard that case.
func (g *Graph) Density() float64 {
	v := float64(g.nodeCount)

	return 2.0 * float64(g.edgeCount) / (v * (v - 1))
}

// IsComplete reports whether Density is exactly 1.
func (g *Graph) IsComplete() bool { return g.Density() == 1.0 }

// IsDense reports whether Density exceeds DenseThreshold.
func (g *Graph) IsDense() bool { return g.Density() > DenseThreshold }

// IsSparse reports whether Density is below SparseThreshold.
func (g *Graph) IsSparse() bool { return g.Density() < SparseThreshold }

// IsClique reports whether every node is connected to every other node.
func (g *Graph) IsClique() bool { return g.IsComplete() }

// Sorted returns the nodes whose metric is at least threshold, highest
// first. Ties keep insertion order.
// Complexity: O(V log V).
func (g *Graph) Sorted(order Order, threshold float64) []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if n != nil && order.metric(n) >= threshold {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return order.metric(out[i]) > order.metric(out[j])
	})

	return out
}

// Split returns one Copy per connected component (edge direction ignored),
// largest first. Components of equal size keep the order of their first node.
//
// Implementation:
//   - Stage 1: Union-find over edge endpoints with path halving and union by rank.
//   - Stage 2: Group nodes by root in insertion order.
//   - Stage 3: Copy each group and sort by node count descending.
//
// Complexity:
//   - Time O(V + E·α(V)) for the partition plus O(V + E) per copy.
func (g *Graph) Split() []*Graph {
	parent := make([]NodeID, len(g.nodes))
	rank := make([]int, len(g.nodes))
	for i := range parent {
		parent[i] = NodeID(i)
	}
	find := func(u NodeID) NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v NodeID) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
	}
	for _, e := range g.edges {
		if e != nil {
			union(e.n1, e.n2)
		}
	}

	groups := make(map[NodeID][]string)
	var roots []NodeID
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		r := find(n.handle)
		if _, ok := groups[r]; !ok {
			roots = append(roots, r)
		}
		groups[r] = append(groups[r], n.ID)
	}

	out := make([]*Graph, 0, len(roots))
	for _, r := range roots {
		out = append(out, g.Copy(groups[r]...))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Len() > out[j].Len() })

	return out
}

// Clique returns a greedy maximal clique containing id: starting from id,
// each node in insertion order joins when it is linked to every member.
// An unknown id yields nil.
// Complexity: O(V · k) for a clique of size k.
func (g *Graph) Clique(id string) []string {
	if !g.HasNode(id) {
		return nil
	}
	members := []string{id}
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		joins := true
		for _, m := range members {
			if n.ID == m || g.Edge(n.ID, m) == nil {
				joins = false
				break
			}
		}
		if joins {
			members = append(members, n.ID)
		}
	}

	return members
}

// Cliques returns the distinct greedy cliques with at least threshold
// members, each sorted by id, in order of discovery.
// Complexity: O(V² · k).
func (g *Graph) Cliques(threshold int) [][]string {
	seen := make(map[string]bool)
	var out [][]string
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		c := g.Clique(n.ID)
		if len(c) < threshold {
			continue
		}
		sort.Strings(c)
		key := strings.Join(c, "\x00")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}

	return out
}
