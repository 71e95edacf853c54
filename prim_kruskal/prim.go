// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/netgraph/core"
)

// Prim computes the minimum-cost spanning tree of g by growing it from root.
//
// Steps:
//  1. Validate: g != nil, root non-empty and present. A single node yields
//     an empty tree; an empty graph is disconnected.
//  2. Index every non-loop edge under both endpoints, in insertion order.
//  3. Push the root's edges; repeatedly pop the cheapest candidate and
//     accept it when it reaches an unvisited node, pushing that node's edges.
//  4. Fewer than |V|−1 accepted edges means g is disconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root string) ([]*core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Len() == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasNode(root) {
		return nil, 0, ErrNodeNotFound
	}
	n := g.Len()
	if n == 1 {
		return []*core.Edge{}, 0, nil
	}

	incident := make(map[string][]candidate, n)
	seq := 0
	for _, e := range g.Edges() {
		if e.Node1 == e.Node2 {
			continue
		}
		c := cost(e)
		incident[e.Node1] = append(incident[e.Node1], candidate{edge: e, to: e.Node2, cost: c, seq: seq})
		incident[e.Node2] = append(incident[e.Node2], candidate{edge: e, to: e.Node1, cost: c, seq: seq})
		seq++
	}

	visited := make(map[string]bool, n)
	pq := &candidatePQ{}
	visit := func(id string) {
		visited[id] = true
		for _, c := range incident[id] {
			if !visited[c.to] {
				heap.Push(pq, c)
			}
		}
	}
	visit(root)

	var (
		tree  = make([]*core.Edge, 0, n-1)
		total float64
	)
	for pq.Len() > 0 && len(tree) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		tree = append(tree, c.edge)
		total += c.cost
		visit(c.to)
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// candidate is an edge leading out of the tree towards node to.
type candidate struct {
	edge *core.Edge
	to   string
	cost float64
	seq  int
}

// candidatePQ is a min-heap of candidates ordered by cost, then insertion.
type candidatePQ []candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x any) { *pq = append(*pq, x.(candidate)) }

func (pq *candidatePQ) Pop() any {
	old := *pq
	last := old[len(old)-1]
	*pq = old[:len(old)-1]

	return last
}
