// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/netgraph/core"
)

// addNodes inserts ids into g in order. Re-adding an existing id is a no-op
// in core.Graph, so composing constructors over shared ids is safe.
//
// Complexity: O(len(ids)).
func addNodes(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if _, err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge emits u→v carrying one weight draw from cfg.weightFn and the
// configured edge type.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	opts := []core.EdgeOption{core.WithWeight(w)}
	if cfg.edgeType != "" {
		opts = append(opts, core.WithType(cfg.edgeType))
	}
	if _, err := g.AddEdge(u, v, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids once, lower index
// first. Links on both endpoints make the pair traversable both ways.
//
// Complexity: O(m²) where m = len(ids).
func addCompleteEdges(g *core.Graph, cfg builderConfig, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// idsFrom resolves idFn over [from, to).
func idsFrom(idFn IDFn, from, to int) []string {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, idFn(i))
	}

	return ids
}

// makeIDs generates n ids by concatenating prefix and index.
// Example: makeIDs("L",3) → {"L0","L1","L2"}.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
