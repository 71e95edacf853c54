// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// adjacency index of a core.Graph.
//
// Notes on implementation choices:
//
//   - A fresh adjacency.Index is built per call; results always reflect the
//     graph as it is now.
//   - We perform an upfront scan of the index to detect negative costs and fail fast.
//   - The heap is ordered by cumulative cost, then by push sequence, and
//     neighbors are relaxed in sorted id order, so ties resolve deterministically.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/netgraph/adjacency"
	"github.com/katalvlaran/netgraph/core"
)

// ShortestPath returns the node ids on the cheapest path from id1 to id2,
// both included. id1 == id2 yields [id1].
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain id1 and id2 (ErrNodeNotFound).
//  3. No effective cost may be negative (ErrNegativeCost).
//
// Returns ErrUnreachable when id2 cannot be reached.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, id1, id2 string, opts ...Option) ([]string, error) {
	path, _, err := ShortestPathCost(g, id1, id2, opts...)
	return path, err
}

// ShortestPathCost is ShortestPath that also returns the total traversal cost.
func ShortestPathCost(g *core.Graph, id1, id2 string, opts ...Option) ([]string, float64, error) {
	r, err := newRunner(g, id1, opts)
	if err != nil {
		return nil, 0, err
	}
	if !g.HasNode(id2) {
		return nil, 0, fmt.Errorf("ShortestPath: target %q: %w", id2, ErrNodeNotFound)
	}

	r.process(id2)
	if !r.visited[id2] {
		return nil, 0, fmt.Errorf("ShortestPath %s→%s: %w", id1, id2, ErrUnreachable)
	}

	return r.path(id2), r.dist[id2], nil
}

// ShortestPaths returns the cheapest path from id to every node of g.
// Every node appears as a key; unreachable nodes map to nil. Use Reachable
// to tell a nil path apart from an absent key.
//
// Validation matches ShortestPath.
//
// Complexity:
//
//   - Time:  O((V + E) log V + V·L) where L is the longest path length.
//   - Space: O(V·L)
func ShortestPaths(g *core.Graph, id string, opts ...Option) (map[string][]string, error) {
	r, err := newRunner(g, id, opts)
	if err != nil {
		return nil, err
	}
	r.process("")

	out := make(map[string][]string, g.Len())
	for _, n := range g.Nodes() {
		if r.visited[n.ID] {
			out[n.ID] = r.path(n.ID)
		} else {
			out[n.ID] = nil
		}
	}

	return out, nil
}

// Reachable reports whether paths holds a non-nil path for id.
func Reachable(paths map[string][]string, id string) bool {
	p, ok := paths[id]
	return ok && p != nil
}

// runner holds the mutable state for a single search.
type runner struct {
	ix      adjacency.Index    // cost index; read-only.
	source  string             // start node.
	dist    map[string]float64 // best-known cost from source.
	prev    map[string]string  // predecessor on the best-known path.
	visited map[string]bool    // finalized nodes.
	pq      nodePQ             // lazy min-heap.
	seq     int                // push counter for tie-breaking.
}

// newRunner validates inputs, builds the index and seeds the heap with source.
func newRunner(g *core.Graph, source string, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("ShortestPath: source %q: %w", source, ErrNodeNotFound)
	}

	ix, err := adjacency.Build(g,
		adjacency.WithDirected(cfg.Directed),
		adjacency.WithHeuristic(cfg.Heuristic),
	)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	if a, b, neg := ix.Negative(); neg {
		return nil, fmt.Errorf("%w: %s→%s cost=%g", ErrNegativeCost, a, b, ix[a][b])
	}

	r := &runner{
		ix:      ix,
		source:  source,
		dist:    make(map[string]float64, len(ix)),
		prev:    make(map[string]string, len(ix)),
		visited: make(map[string]bool, len(ix)),
		pq:      make(nodePQ, 0, len(ix)),
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)

	return r, nil
}

// process pops nodes in cost order until the heap drains or target is
// finalized (an empty target runs to exhaustion).
func (r *runner) process(target string) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == target {
			return
		}
		r.relax(u, item.dist)
	}
}

// relax improves every unvisited neighbor of u reachable through u.
func (r *runner) relax(u string, du float64) {
	for _, v := range r.ix.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		nd := du + r.ix[u][v]
		if cur, ok := r.dist[v]; ok && nd >= cur {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}
}

func (r *runner) push(id string, dist float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// path walks predecessors back from a finalized node to the source.
func (r *runner) path(id string) []string {
	var rev []string
	for cur := id; ; cur = r.prev[cur] {
		rev = append(rev, cur)
		if cur == r.source {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// nodeItem is a heap entry: a node and its tentative cost from the source.
type nodeItem struct {
	id   string
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost; equal costs pop in push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
