// Package bfs provides breadth-first search over a core.Graph.
//
// BFS visits nodes in increasing hop distance from a start node, following
// node links in link order, with an optional stopping visit hook, an edge
// filter and depth limiting.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  *core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
}

// BFS runs breadth-first search on g starting from startID, applying any
// number of functional Options. It returns true when the Visit hook stopped
// the search.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS(g *core.Graph, startID string, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}

	// Validate start node
	start := g.Node(startID)
	if start == nil {
		return false, fmt.Errorf("bfs: %q: %w", startID, ErrStartNodeNotFound)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
	}

	// Seed queue with start node
	w.enqueue(start, 0)

	return w.loop()
}

// enqueue marks n visited and adds it to the queue.
func (w *walker) enqueue(n *core.Node, d int) {
	w.visited[n.ID] = true
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, a stop, or cancellation.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if w.opts.Visit(item.node) {
			return true, nil
		}
		w.enqueueNeighbors(item)
	}

	return false, nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, l := range w.graph.Links(item.node.ID) {
		if !w.opts.Traversable(item.node, l.Edge) {
			continue
		}
		// first time seen?
		if !w.visited[l.Node.ID] {
			w.enqueue(l.Node, nextDepth)
		}
	}
}
