// Package dijkstra defines the errors and configuration options for
// shortest-path search over a core.Graph.
//
// Costs come from the adjacency index: an edge of weight w costs
// 1 − 0.5·w (+ heuristic), so heavier edges are cheaper to follow.
// Dijkstra requires every effective cost to be non-negative; weights above 2
// are therefore rejected up front.
//
// Options:
//
//	– Directed:  follow edges from Node1 to Node2 only (default false).
//	– Heuristic: extra cost per step, forwarded to adjacency.Build.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrNodeNotFound  if a source or target id is not in the graph.
//	– ErrUnreachable   if the target cannot be reached from the source.
//	– ErrNegativeCost  if any effective edge cost is negative.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/netgraph/adjacency"
)

// Sentinel errors returned by the shortest-path functions.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that a source or target id is not in the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrUnreachable indicates that no path connects source and target.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrNegativeCost indicates an edge whose effective cost is negative.
	ErrNegativeCost = errors.New("dijkstra: negative traversal cost encountered")
)

// Options configures a shortest-path search.
//
// Directed  – if true, edges are one-way (Node1 → Node2).
// Heuristic – additional cost for moving between two ids; nil adds nothing.
type Options struct {
	Directed  bool
	Heuristic adjacency.Heuristic
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithDirected sets whether edges are followed in their declared direction only.
func WithDirected(directed bool) Option {
	return func(o *Options) {
		o.Directed = directed
	}
}

// WithHeuristic sets the extra-cost function forwarded to the adjacency index.
func WithHeuristic(h adjacency.Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// DefaultOptions returns undirected Options without a heuristic.
func DefaultOptions() Options {
	return Options{}
}
