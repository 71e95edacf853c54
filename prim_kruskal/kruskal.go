// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/netgraph/core"
)

// Kruskal computes the minimum-cost spanning tree of g.
//
// Steps:
//  1. Validate: g != nil; an empty graph is disconnected, a single node
//     yields an empty tree.
//  2. Collect edges, skipping self-loops, and stable-sort them by cost.
//  3. Accept each edge whose endpoints lie in different union-find sets
//     until |V|−1 edges are accepted.
//  4. Fewer than |V|−1 accepted edges means g is disconnected.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]*core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	ids := g.NodeIDs()
	switch len(ids) {
	case 0:
		return nil, 0, ErrDisconnected
	case 1:
		return []*core.Edge{}, 0, nil
	}

	all := g.Edges()
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.Node1 != e.Node2 {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return cost(edges[i]) < cost(edges[j]) })

	parent := make(map[string]string, len(ids))
	rank := make(map[string]int, len(ids))
	for _, id := range ids {
		parent[id] = id
	}
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v string) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
		return true
	}

	var (
		tree  = make([]*core.Edge, 0, len(ids)-1)
		total float64
	)
	for _, e := range edges {
		if !union(e.Node1, e.Node2) {
			continue
		}
		tree = append(tree, e)
		total += cost(e)
		if len(tree) == len(ids)-1 {
			break
		}
	}

	if len(tree) < len(ids)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
