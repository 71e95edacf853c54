// Package dfs implements depth-first search and brute-force simple-path
// enumeration on core.Graph.
//
// Key features:
//   - DFS(g, startID, opts...): recursive traversal over node links
//   - Visit hook that stops the whole traversal by returning true
//   - Traversable filter deciding, per node and edge, which links to follow
//   - Cancellation via context.Context
//   - Paths / PathEdges: bounded simple paths and the edges along them
//
// Complexity:
//
//   - Time:   O(V + E) for DFS, plus hook overhead.
//   - Memory: O(V) for the recursion stack and the visited set.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartNodeNotFound   if startID is missing.
//   - context.Canceled       if ctx is done.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph     // underlying graph
	opts    DFSOptions      // traversal options
	visited map[string]bool // discovered node ids
}

// DFS performs depth-first search on graph g from startID, following each
// node's links in link order. It returns true when the Visit hook stopped
// the traversal.
func DFS(g *core.Graph, startID string, opts ...Option) (bool, error) {
	// 1. Validate input graph
	if g == nil {
		return false, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify startID
	start := g.Node(startID)
	if start == nil {
		return false, fmt.Errorf("dfs: %q: %w", startID, ErrStartNodeNotFound)
	}

	walker := &dfsWalker{graph: g, opts: dopts, visited: make(map[string]bool, g.Len())}

	return walker.traverse(start)
}

// traverse visits n and recurses into unvisited, traversable neighbors.
// The stop flag is checked before every neighbor, so a stop raised by n
// itself or by any descendant unwinds immediately.
func (w *dfsWalker) traverse(n *core.Node) (bool, error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	// 2. Visit and mark
	stop := w.opts.Visit != nil && w.opts.Visit(n)
	w.visited[n.ID] = true

	// 3. Explore links
	var err error
	for _, l := range w.graph.Links(n.ID) {
		if stop {
			return true, nil
		}
		if w.opts.Traversable != nil && !w.opts.Traversable(n, l.Edge) {
			continue
		}
		if !w.visited[l.Node.ID] {
			if stop, err = w.traverse(l.Node); err != nil {
				return false, err
			}
		}
	}

	return stop, nil
}
