// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netgraph/adjacency"
	"github.com/katalvlaran/netgraph/core"
)

// Sentinel errors returned by the spanning-tree functions.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("prim_kruskal: graph is nil")

	// ErrEmptyRoot indicates that Prim was called without a start node.
	ErrEmptyRoot = errors.New("prim_kruskal: empty root node")

	// ErrNodeNotFound indicates that the Prim root is not in the graph.
	ErrNodeNotFound = errors.New("prim_kruskal: root node not found")

	// ErrDisconnected indicates that no single tree can span every node.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// Method names accepted by WithMethod.
const (
	// MethodPrim grows the tree from a root using a min-heap.
	MethodPrim = "prim"

	// MethodKruskal sorts all edges and merges components with union-find.
	MethodKruskal = "kruskal"
)

// MSTOptions selects the algorithm and, for Prim, the start node.
type MSTOptions struct {
	// Method is MethodPrim or MethodKruskal.
	Method string

	// Root is the start node for Prim. Empty means the graph root, or the
	// first node when no root is set. Ignored by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot sets the Prim start node.
func WithRoot(root string) Option {
	return func(o *MSTOptions) { o.Root = root }
}

// DefaultOptions returns Kruskal with no explicit root.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm selected by opts and returns the tree edges
// and their total cost.
func Compute(g *core.Graph, opts ...Option) ([]*core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		if g == nil {
			return nil, 0, ErrNilGraph
		}
		root := o.Root
		if root == "" {
			root = defaultRoot(g)
		}
		return Prim(g, root)
	default:
		return nil, 0, fmt.Errorf("Compute(%q): %w", o.Method, ErrUnknownMethod)
	}
}

// defaultRoot picks the graph root, else the first node, else "".
func defaultRoot(g *core.Graph) string {
	if r := g.Root(); r != nil {
		return r.ID
	}
	if ids := g.NodeIDs(); len(ids) > 0 {
		return ids[0]
	}

	return ""
}

// cost is the undirected traversal cost of e.
func cost(e *core.Edge) float64 { return adjacency.Cost(e.Weight) }
