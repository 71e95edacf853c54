// Package dfs defines options and errors for depth-first search over a
// core.Graph, including cancellation, a stopping visit hook and an edge
// traversal filter.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/netgraph/core"
)

// DefaultMaxLength is the default node-count bound for Paths.
const DefaultMaxLength = 4

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the specified start node ID
	// does not exist in the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// Visit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning true stops the whole traversal and DFS returns true.
	Visit func(n *core.Node) bool

	// Traversable, if non-nil, decides whether the edge linking n to a
	// neighbor may be followed. For directed traversal use
	//  func(n *core.Node, e *core.Edge) bool { return e.Node1 == n.ID }
	Traversable core.Traversable
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No visit hook (never stops)
//   - Every edge traversable
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:         context.Background(),
		Visit:       nil,
		Traversable: nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithVisit returns an Option that installs fn as the discovery hook.
func WithVisit(fn func(n *core.Node) bool) Option {
	return func(o *DFSOptions) {
		o.Visit = fn
	}
}

// WithTraversable returns an Option that installs the edge filter.
func WithTraversable(fn core.Traversable) Option {
	return func(o *DFSOptions) {
		o.Traversable = fn
	}
}
