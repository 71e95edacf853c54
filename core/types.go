// SPDX-License-Identifier: MIT
// Package core defines the Graph arena, the Node and Edge records it owns,
// and the functional options used to configure them.
//
// Nodes and edges live in slices addressed by integer handles (NodeID,
// EdgeID). Relationships between them are handle pairs, never pointers to
// each other, so removing a node is handle invalidation plus link pruning.
// Removed slots are tombstoned (nil) to keep insertion order for iteration
// and are compacted once they outnumber live entries.
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrNodeNotFound    - an operation referenced a missing node.
//	ErrNegativeWeight  - edge weight is negative or NaN.
//	ErrInvalidUpdate   - negative iteration count, weight or limit for Update.
//	ErrOptionViolation - a GraphOption carried an invalid value.
package core

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates a negative (or NaN) edge weight.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrInvalidUpdate indicates a negative iteration count, weight or limit.
	ErrInvalidUpdate = errors.New("core: invalid layout update parameters")

	// ErrOptionViolation indicates an invalid value passed to a GraphOption.
	ErrOptionViolation = errors.New("core: option violation")
)

// Defaults shared by the graph and its entities.
const (
	DefaultDistance   = 10.0 // screen units per layout unit
	DefaultRadius     = 5.0  // node hit-test radius
	DefaultEdgeLength = 1.0  // spring rest-length multiplier

	DefaultIterations = 2    // Update iterations per tick
	DefaultWeight     = 10.0 // impact of edge weight on attraction
	DefaultLimit      = 0.5  // maximum displacement per iteration and axis
)

// NodeID is the arena handle of a Node inside its Graph.
type NodeID int

// EdgeID is the arena handle of an Edge inside its Graph.
type EdgeID int

// noHandle marks an unset root or dragged node.
const noHandle NodeID = -1

// Element is implemented by *Node and *Edge so that Graph.Remove accepts either.
type Element interface {
	element()
}

// Node is a graph vertex with identity, layout state and centrality metrics.
//
// X and Y are screen coordinates (Pos scaled by the graph distance) and are
// refreshed by the layout; Pos and Force are the internal simulation state.
// Weight, Centrality and Degree are written back by the centrality package.
type Node struct {
	ID string

	X, Y  float64
	Pos   r2.Vec
	Force r2.Vec

	Radius float64
	Fixed  bool

	Weight     float64 // eigenvector centrality
	Centrality float64 // betweenness centrality
	Degree     float64 // degree centrality

	Label string
	Attrs map[string]string

	handle NodeID
	links  Links
}

func (*Node) element() {}

// Handle returns the arena handle of n.
func (n *Node) Handle() NodeID { return n.handle }

// LinkCount returns the number of distinct neighbors linked to n.
func (n *Node) LinkCount() int { return n.links.Len() }

// Contains reports whether the screen point (x, y) falls inside the node's
// hit box of twice its radius.
func (n *Node) Contains(x, y float64) bool {
	return math.Abs(n.X-x) < n.Radius*2 && math.Abs(n.Y-y) < n.Radius*2
}

// Edge is a directed connection Node1→Node2.
//
// Weight expresses the importance of the connection (not its cost): heavier
// edges are cheaper to traverse and pull harder in the spring layout.
// Length is the rest-length multiplier used by the layout.
type Edge struct {
	Node1  string
	Node2  string
	Weight float64
	Length float64
	Type   string
	Attrs  map[string]string

	handle EdgeID
	n1, n2 NodeID
}

func (*Edge) element() {}

// Handle returns the arena handle of e.
func (e *Edge) Handle() EdgeID { return e.handle }

// Link pairs a neighbor with the edge that connects to it.
type Link struct {
	Node *Node
	Edge *Edge
}

// Traversable gates whether a traversal may follow edge e away from node n.
// A nil Traversable allows every edge.
type Traversable func(n *Node, e *Edge) bool

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithDistance sets the scale from layout units to screen units.
// Non-positive values are recorded as ErrOptionViolation.
func WithDistance(d float64) GraphOption {
	return func(g *Graph) {
		if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			g.err = ErrOptionViolation
			return
		}
		g.distance = d
	}
}

// WithLayout attaches the layout strategy driven by Update.
// A nil layout is recorded as ErrOptionViolation.
func WithLayout(l Layout) GraphOption {
	return func(g *Graph) {
		if l == nil {
			g.err = ErrOptionViolation
			return
		}
		g.layout = l
	}
}

// NodeOption configures a node when it is first added.
type NodeOption func(*nodeSpec)

type nodeSpec struct {
	radius     float64
	fixed      bool
	pos        r2.Vec
	label      string
	attrs      map[string]string
	root       bool
	weight     float64
	centrality float64
}

// WithRadius sets the node radius used for hit-testing.
func WithRadius(r float64) NodeOption { return func(s *nodeSpec) { s.radius = r } }

// WithFixed pins the node: the layout never displaces it.
func WithFixed() NodeOption { return func(s *nodeSpec) { s.fixed = true } }

// WithPosition sets the initial internal (unscaled) position.
func WithPosition(x, y float64) NodeOption {
	return func(s *nodeSpec) { s.pos = r2.Vec{X: x, Y: y} }
}

// WithLabel sets a display label; the ID is used when empty.
func WithLabel(label string) NodeOption { return func(s *nodeSpec) { s.label = label } }

// WithAttr sets one opaque attribute.
func WithAttr(key, value string) NodeOption {
	return func(s *nodeSpec) {
		if s.attrs == nil {
			s.attrs = make(map[string]string)
		}
		s.attrs[key] = value
	}
}

// WithRoot designates the node as the graph root, also for existing nodes.
func WithRoot() NodeOption { return func(s *nodeSpec) { s.root = true } }

// WithNodeWeight seeds the eigenvector score.
func WithNodeWeight(w float64) NodeOption { return func(s *nodeSpec) { s.weight = w } }

// WithNodeCentrality seeds the betweenness score.
func WithNodeCentrality(c float64) NodeOption { return func(s *nodeSpec) { s.centrality = c } }

// EdgeOption configures an edge when it is first added.
type EdgeOption func(*edgeSpec)

type edgeSpec struct {
	weight float64
	length float64
	typ    string
	attrs  map[string]string
}

// WithWeight sets the edge weight; it must be non-negative.
func WithWeight(w float64) EdgeOption { return func(s *edgeSpec) { s.weight = w } }

// WithLength sets the spring rest-length multiplier.
func WithLength(l float64) EdgeOption { return func(s *edgeSpec) { s.length = l } }

// WithType sets the semantic relation tag, e.g. "is-a".
func WithType(t string) EdgeOption { return func(s *edgeSpec) { s.typ = t } }

// WithEdgeAttr sets one opaque attribute.
func WithEdgeAttr(key, value string) EdgeOption {
	return func(s *edgeSpec) {
		if s.attrs == nil {
			s.attrs = make(map[string]string)
		}
		s.attrs[key] = value
	}
}

// Graph is a mutable network of nodes and edges with an attached layout.
//
// A Graph has a single logical owner: it carries no locks, and mutation must
// not interleave with Update or with centrality/path computations on the same
// instance. Callers sharing a Graph across goroutines synchronize externally.
type Graph struct {
	nodes []*Node // arena; nil entries are tombstones
	edges []*Edge // arena; nil entries are tombstones
	index map[string]NodeID

	nodeCount int
	edgeCount int

	root    NodeID
	dragged NodeID

	distance float64
	layout   Layout

	err error
}

// NewGraph creates an empty Graph. Without WithLayout the graph carries a
// StaticLayout, which counts iterations but never moves nodes.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:    make(map[string]NodeID),
		root:     noHandle,
		dragged:  noHandle,
		distance: DefaultDistance,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.layout == nil {
		g.layout = &StaticLayout{}
	}

	return g
}

func cloneAttrs(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}
