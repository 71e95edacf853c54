// SPDX-License-Identifier: MIT
//
// File: betweenness.go
// Role: Brandes betweenness centrality with weighted single-source searches.
// Determinism:
//   - Sources follow graph insertion order, neighbors are relaxed in sorted
//     order and heap ties pop in push order.

package centrality

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/netgraph/adjacency"
	"github.com/katalvlaran/netgraph/core"
)

// Betweenness measures how many shortest paths pass through each node;
// nodes bridging dense regions score high. Scores are written to
// Node.Centrality.
//
// Implementation:
//   - Stage 1: Build the index (Directed) and reject negative costs.
//   - Stage 2: From every source run Dijkstra, recording the stack of
//     finalized nodes, each node's shortest-path predecessors (ties
//     included) and path counts sigma.
//   - Stage 3: Pop the stack accumulating dependencies
//     delta[v] += (1 + delta[w]) · sigma[v] / sigma[w] and add delta[w]
//     to every non-source w.
//   - Stage 4: Divide by the maximum when Normalized (a zero maximum leaves
//     scores as is).
//
// Complexity: O(V·E + V²·log V).
func Betweenness(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultBetweennessOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ids := g.NodeIDs()
	b := make(map[string]float64, len(ids))
	if len(ids) == 0 {
		return b, nil
	}

	ix, err := adjacency.Build(g, adjacency.WithDirected(o.Directed))
	if err != nil {
		return nil, fmt.Errorf("Betweenness: %w", err)
	}
	if a, c, neg := ix.Negative(); neg {
		return nil, fmt.Errorf("Betweenness: %s→%s cost=%g: %w", a, c, ix[a][c], ErrNegativeCost)
	}

	for _, id := range ids {
		b[id] = 0
	}
	for _, s := range ids {
		accumulate(ix, s, b)
	}

	m := 1.0
	if o.Normalized {
		if mx := maxScore(b); mx != 0 {
			m = mx
		}
	}
	for _, id := range ids {
		b[id] /= m
		g.Node(id).Centrality = b[id]
	}

	return b, nil
}

// accumulate runs one single-source search from s and adds the resulting
// dependencies to b.
func accumulate(ix adjacency.Index, s string, b map[string]float64) {
	var (
		stack []string
		final = make(map[string]bool)
		seen  = map[string]float64{s: 0}
		preds = make(map[string][]string)
		sigma = map[string]float64{s: 1}
		pq    pathPQ
		seq   int
	)
	heap.Push(&pq, &pathItem{dist: 0, seq: seq, pred: s, id: s})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*pathItem)
		v := it.id
		if final[v] {
			continue
		}
		final[v] = true
		stack = append(stack, v)
		if v != s {
			sigma[v] += sigma[it.pred]
		}
		for _, w := range ix.Neighbors(v) {
			vw := it.dist + ix[v][w]
			done := final[w]
			sw, ok := seen[w]
			switch {
			case !done && (!ok || vw < sw):
				seen[w] = vw
				seq++
				heap.Push(&pq, &pathItem{dist: vw, seq: seq, pred: v, id: w})
				preds[w] = []string{v}
				sigma[w] = 0
			case !done && vw == sw:
				preds[w] = append(preds[w], v)
				sigma[w] += sigma[v]
			}
		}
	}

	delta := make(map[string]float64, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range preds[w] {
			delta[v] += (1 + delta[w]) * sigma[v] / sigma[w]
		}
		if w != s {
			b[w] += delta[w]
		}
	}
}

// maxScore returns the largest value in b.
func maxScore(b map[string]float64) float64 {
	first := true
	var m float64
	for _, w := range b {
		if first || w > m {
			m, first = w, false
		}
	}

	return m
}

// pathItem is a heap entry: tentative distance of id reached from pred.
type pathItem struct {
	dist float64
	seq  int
	pred string
	id   string
}

// pathPQ is a min-heap of *pathItem ordered by dist, then seq.
type pathPQ []*pathItem

func (pq pathPQ) Len() int { return len(pq) }

func (pq pathPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq pathPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(*pathItem)) }

func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
