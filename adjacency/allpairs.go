// SPDX-License-Identifier: MIT
//
// File: allpairs.go
// Role: All-pairs shortest traversal costs (Floyd–Warshall) over an Index,
// with a predecessor table for path reconstruction.
// Determinism:
//   - Node order follows graph insertion order; loop order is fixed
//     (k → i → j) and only strict improvements relax an entry.

package adjacency

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netgraph/core"
)

const opAllPairs = "AllPairs"

// noPred marks an absent predecessor.
const noPred = -1

// Distances holds all-pairs shortest traversal costs.
type Distances struct {
	ids  []string
	pos  map[string]int
	dist *mat.Dense // +Inf where unreachable; nil for an empty graph
	pred []int      // row-major: pred[i*n+j] is the node before j on i→j
}

// AllPairs computes shortest traversal costs between every pair of nodes.
// opts are forwarded to Build (Directed, Reversed, Heuristic, Stochastic).
//
// Implementation:
//   - Stage 1: Build the Index and reject negative costs (ErrNegativeCost).
//   - Stage 2: Seed the distance matrix: 0 on the diagonal, the Index cost
//     for direct links, +Inf elsewhere; predecessors point at the source.
//   - Stage 3: Relax through every intermediate node k, copying the
//     predecessor of j on k→j when i→k→j is strictly shorter.
//
// Complexity: Time O(V³), Space O(V²).
func AllPairs(g *core.Graph, opts ...Option) (*Distances, error) {
	ix, err := Build(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAllPairs, err)
	}
	if err = ix.checkNonNegative(opAllPairs); err != nil {
		return nil, err
	}

	ids := g.NodeIDs()
	n := len(ids)
	d := &Distances{ids: ids, pos: make(map[string]int, n), pred: make([]int, n*n)}
	for i, id := range ids {
		d.pos[id] = i
	}
	if n == 0 {
		return d, nil
	}

	d.dist = mat.NewDense(n, n, nil)
	for i, a := range ids {
		for j, b := range ids {
			d.pred[i*n+j] = noPred
			switch w, ok := ix[a][b]; {
			case i == j:
				d.dist.Set(i, j, 0)
			case ok:
				d.dist.Set(i, j, w)
				d.pred[i*n+j] = i
			default:
				d.dist.Set(i, j, math.Inf(1))
			}
		}
	}

	var ik, kj, cand float64
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik = d.dist.At(i, k)
			if math.IsInf(ik, 1) || i == k {
				continue
			}
			for j := 0; j < n; j++ {
				kj = d.dist.At(k, j)
				if math.IsInf(kj, 1) || j == k {
					continue
				}
				cand = ik + kj
				if cand < d.dist.At(i, j) {
					d.dist.Set(i, j, cand)
					d.pred[i*n+j] = d.pred[k*n+j]
				}
			}
		}
	}

	return d, nil
}

// IDs returns the node ids in matrix order.
func (d *Distances) IDs() []string { return append([]string(nil), d.ids...) }

// Matrix returns a copy of the distance matrix (+Inf where unreachable),
// or nil for an empty graph.
func (d *Distances) Matrix() *mat.Dense {
	if d.dist == nil {
		return nil
	}
	return mat.DenseCopyOf(d.dist)
}

// Distance returns the shortest cost from u to v and whether v is
// reachable from u. Unknown ids are unreachable.
func (d *Distances) Distance(u, v string) (float64, bool) {
	i, ok1 := d.pos[u]
	j, ok2 := d.pos[v]
	if !ok1 || !ok2 {
		return math.Inf(1), false
	}
	w := d.dist.At(i, j)

	return w, !math.IsInf(w, 1)
}

// Path returns the node ids on the shortest path from u to v, both included.
// u == v yields [u]; unknown or unreachable pairs yield nil.
func (d *Distances) Path(u, v string) []string {
	i, ok1 := d.pos[u]
	j, ok2 := d.pos[v]
	if !ok1 || !ok2 {
		return nil
	}
	if i == j {
		return []string{u}
	}
	n := len(d.ids)
	if d.pred[i*n+j] == noPred {
		return nil
	}

	rev := []string{v}
	for cur := j; cur != i; {
		cur = d.pred[i*n+cur]
		rev = append(rev, d.ids[cur])
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}

	return rev
}
