// SPDX-License-Identifier: MIT
//
// File: eigenvector.go
// Role: Eigenvector centrality by power iteration over the adjacency index.
// Determinism:
//   - Nodes follow graph insertion order and rows are scanned in sorted
//     neighbor order; with WithSeed the start vector, and therefore the
//     result, is reproducible.

package centrality

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/netgraph/adjacency"
	"github.com/katalvlaran/netgraph/core"
)

// damping is added for every link followed, so nodes with links never
// collapse to zero.
const damping = 0.01

// entry is one stored adjacency cost: column position and value.
type entry struct {
	col int
	w   float64
}

// Eigenvector rewards nodes with a high potential of (indirectly)
// connecting to high-scoring nodes. With the default reversed, directed
// index a node's score grows with its incoming traffic; nodes without
// incoming links score zero.
//
// Implementation:
//   - Stage 1: Build the index (Directed, Reversed) and a random start
//     vector, L1-normalized.
//   - Stage 2: Each iteration sets v[n1] = Σ over stored n2 of
//     0.01 + v0[n2]·cost(n1,n2)·rating[n1], then L1-normalizes.
//   - Stage 3: Stop when Σ|v − v0| < |V|·tolerance and divide by the
//     maximum when Normalized.
//   - Stage 4: Write scores to Node.Weight.
//
// When the budget runs out first, a warning is logged and every score is
// zero; this is not an error.
//
// Complexity: O(iterations · (V + E)).
func Eigenvector(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	o := DefaultEigenvectorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	ids := g.NodeIDs()
	n := len(ids)
	if n == 0 {
		return Result{Scores: map[string]float64{}, Converged: true}, nil
	}

	ix, err := adjacency.Build(g, adjacency.WithDirected(o.Directed), adjacency.WithReversed(o.Reversed))
	if err != nil {
		return Result{}, fmt.Errorf("Eigenvector: %w", err)
	}
	pos := make(map[string]int, n)
	for i, id := range ids {
		pos[id] = i
	}
	rows := make([][]entry, n)
	rating := make([]float64, n)
	for i, id := range ids {
		for _, nb := range ix.Neighbors(id) {
			rows[i] = append(rows[i], entry{col: pos[nb], w: ix[id][nb]})
		}
		rating[i] = 1
		if r, ok := o.Rating[id]; ok {
			rating[i] = r
		}
	}

	rng := o.rng()
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()
	}
	normalizeL1(v)

	v0 := make([]float64, n)
	for it := 1; it <= o.Iterations; it++ {
		v, v0 = v0, v
		for i := range v {
			v[i] = 0
			for _, e := range rows[i] {
				v[i] += damping + v0[e.col]*e.w*rating[i]
			}
		}
		normalizeL1(v)

		if floats.Distance(v, v0, 1) < float64(n)*o.Tolerance {
			if o.Normalized {
				if m := floats.Max(v); m != 0 {
					floats.Scale(1/m, v)
				}
			}
			return Result{Scores: writeWeights(g, ids, v), Iterations: it, Converged: true}, nil
		}
	}

	o.logger().Warn("eigenvector centrality did not converge; node weights are 0",
		"iterations", o.Iterations, "tolerance", o.Tolerance, "nodes", n)

	return Result{Scores: writeWeights(g, ids, make([]float64, n)), Iterations: o.Iterations}, nil
}

// normalizeL1 scales v so its entries sum to 1; a zero sum leaves v as is.
func normalizeL1(v []float64) {
	s := floats.Sum(v)
	if s == 0 || math.IsNaN(s) {
		return
	}
	floats.Scale(1/s, v)
}

// writeWeights stores scores on the nodes and returns them by id.
func writeWeights(g *core.Graph, ids []string, v []float64) map[string]float64 {
	out := make(map[string]float64, len(ids))
	for i, id := range ids {
		g.Node(id).Weight = v[i]
		out[id] = v[i]
	}

	return out
}
