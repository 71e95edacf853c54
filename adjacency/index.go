// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Build the adjacency Index from a Graph and query it.
// Determinism:
//   - Edges are applied in graph insertion order; later edges overwrite
//     earlier ones on the same (id1,id2) slot, including mirrored entries.
//   - Neighbors and IDs return sorted ids.

package adjacency

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netgraph/core"
)

// Index maps id1 → id2 → traversal cost. Every node of the source graph has
// a (possibly empty) row.
type Index map[string]map[string]float64

// Build returns a fresh Index for g. It is never cached: each call reflects
// the graph as it is now.
//
// Implementation:
//   - Stage 1: Create an empty row for every node.
//   - Stage 2: For every edge (endpoints swapped when Reversed) store
//     Cost(weight) + heuristic; mirror it unless Directed.
//   - Stage 3: When Stochastic, divide each row by its sum (rows summing to
//     zero stay untouched).
//
// Complexity: O(V + E).
func Build(g *core.Graph, opts ...Option) (Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ix := make(Index, g.Len())
	for _, n := range g.Nodes() {
		ix[n.ID] = make(map[string]float64)
	}

	for _, e := range g.Edges() {
		id1, id2 := e.Node1, e.Node2
		if o.Reversed {
			id1, id2 = id2, id1
		}
		w := Cost(e.Weight)
		if o.Heuristic != nil {
			w += o.Heuristic(id1, id2)
		}
		ix[id1][id2] = w
		if !o.Directed {
			ix[id2][id1] = w
		}
	}

	if o.Stochastic {
		for _, row := range ix {
			normalizeRow(row)
		}
	}

	return ix, nil
}

// normalizeRow divides every entry by the row sum.
func normalizeRow(row map[string]float64) {
	if len(row) == 0 {
		return
	}
	vals := make([]float64, 0, len(row))
	for _, w := range row {
		vals = append(vals, w)
	}
	sum := floats.Sum(vals)
	if sum == 0 {
		return
	}
	for id, w := range row {
		row[id] = w / sum
	}
}

// IDs returns every row id, sorted.
func (ix Index) IDs() []string {
	ids := make([]string, 0, len(ix))
	for id := range ix {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the ids reachable in one step from id, sorted.
// Unknown ids yield nil.
func (ix Index) Neighbors(id string) []string {
	row, ok := ix[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(row))
	for nb := range row {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out
}

// Weight returns the cost stored for id1→id2 and whether it exists.
func (ix Index) Weight(id1, id2 string) (float64, bool) {
	w, ok := ix[id1][id2]
	return w, ok
}

// Negative returns the first entry (in sorted row/column order) whose cost
// is negative.
func (ix Index) Negative() (id1, id2 string, ok bool) {
	for _, a := range ix.IDs() {
		for _, b := range ix.Neighbors(a) {
			if ix[a][b] < 0 {
				return a, b, true
			}
		}
	}

	return "", "", false
}

// checkNonNegative wraps ErrNegativeCost with the offending entry.
func (ix Index) checkNonNegative(op string) error {
	if a, b, neg := ix.Negative(); neg {
		return fmt.Errorf("%s: %s→%s cost=%g: %w", op, a, b, ix[a][b], ErrNegativeCost)
	}

	return nil
}

// Matrix returns the dense cost matrix for ids (rows and columns in the
// given order); all sorted ids are used when ids is empty. Missing entries
// are 0. An empty index yields nil.
func (ix Index) Matrix(ids []string) *mat.Dense {
	if len(ids) == 0 {
		ids = ix.IDs()
	}
	if len(ids) == 0 {
		return nil
	}
	m := mat.NewDense(len(ids), len(ids), nil)
	for i, a := range ids {
		row := ix[a]
		for j, b := range ids {
			if w, ok := row[b]; ok {
				m.Set(i, j, w)
			}
		}
	}

	return m
}
