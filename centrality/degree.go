// SPDX-License-Identifier: MIT

package centrality

import "github.com/katalvlaran/netgraph/core"

// Degree scores every node by its number of distinct neighbors divided by
// the node count, and writes the score to Node.Degree.
// An empty (or nil) graph yields an empty map.
// Complexity: O(V).
func Degree(g *core.Graph) map[string]float64 {
	out := make(map[string]float64)
	if g == nil || g.Len() == 0 {
		return out
	}
	total := float64(g.Len())
	for _, n := range g.Nodes() {
		n.Degree = float64(n.LinkCount()) / total
		out[n.ID] = n.Degree
	}

	return out
}
