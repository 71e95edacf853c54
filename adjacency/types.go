// SPDX-License-Identifier: MIT
// Package adjacency defines the traversal-cost index derived from a
// core.Graph and the options that shape it.
//
// Errors (sentinel):
//
//	– ErrNilGraph     if a nil *core.Graph is passed.
//	– ErrNegativeCost if an edge's effective cost is negative (AllPairs only).
package adjacency

import "errors"

// Sentinel errors for adjacency construction and queries.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("adjacency: graph is nil")

	// ErrNegativeCost indicates an edge whose effective cost 1 − 0.5·weight
	// (+ heuristic) is negative; shortest-path closure is undefined then.
	ErrNegativeCost = errors.New("adjacency: negative traversal cost")
)

// Heuristic returns an additional cost for moving from id1 to id2.
type Heuristic func(id1, id2 string) float64

// Options configures Build.
//
// Directed   – edges go from Node1 to Node2 only; otherwise both directions
//
//	carry the same cost. Default false.
//
// Reversed   – swap endpoints before inserting. Default false.
// Stochastic – divide each row by its sum so outgoing costs sum to 1.
// Heuristic  – extra cost added to every entry; nil adds nothing.
type Options struct {
	Directed   bool
	Reversed   bool
	Stochastic bool
	Heuristic  Heuristic
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns undirected, non-reversed, non-stochastic Options
// without a heuristic.
func DefaultOptions() Options { return Options{} }

// WithDirected sets whether edges are one-way.
func WithDirected(directed bool) Option { return func(o *Options) { o.Directed = directed } }

// WithReversed sets whether edge endpoints are swapped.
func WithReversed(reversed bool) Option { return func(o *Options) { o.Reversed = reversed } }

// WithStochastic sets whether rows are normalized to sum to 1.
func WithStochastic(stochastic bool) Option {
	return func(o *Options) { o.Stochastic = stochastic }
}

// WithHeuristic sets the extra-cost function.
func WithHeuristic(h Heuristic) Option { return func(o *Options) { o.Heuristic = h } }

// Cost converts an edge weight into a traversal cost: heavier edges are
// cheaper to follow.
func Cost(weight float64) float64 { return 1.0 - 0.5*weight }
