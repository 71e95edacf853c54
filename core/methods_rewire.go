// SPDX-License-Identifier: MIT
//
// File: methods_rewire.go
// Role: Link and unlink nodes with respect for their surroundings
// (Unlink, Redirect, Cut, Insert). Copied edges keep weight, length, type
// and attributes of the edge they replace.

package core

import "fmt"

// Unlink removes every edge between id1 and id2 in both directions. With
// id2 == "" it removes every edge to and from id1. Nodes are never removed.
// It returns the number of removed edges.
// Complexity: O(E).
func (g *Graph) Unlink(id1, id2 string) int {
	n1 := g.Node(id1)
	if n1 == nil {
		return 0
	}
	var n2 *Node
	if id2 != "" {
		if n2 = g.Node(id2); n2 == nil {
			return 0
		}
	}

	var doomed []*Edge
	for _, e := range g.edges {
		if e == nil || (e.n1 != n1.handle && e.n2 != n1.handle) {
			continue
		}
		if n2 != nil && e.n1 != n2.handle && e.n2 != n2.handle {
			continue
		}
		doomed = append(doomed, e)
	}
	for _, e := range doomed {
		g.edges[e.handle] = nil
		g.edgeCount--
		a, b := g.nodes[e.n1], g.nodes[e.n2]
		a.links.remove(b.handle)
		b.links.remove(a.handle)
	}
	g.maybeCompact()

	return len(doomed)
}

// Redirect moves every edge of id1 onto id2 and then unlinks id1.
// Edges between id1 and id2 themselves are dropped.
func (g *Graph) Redirect(id1, id2 string) error {
	n1, n2 := g.Node(id1), g.Node(id2)
	if n1 == nil || n2 == nil {
		return fmt.Errorf("Redirect %s→%s: %w", id1, id2, ErrNodeNotFound)
	}
	for _, e := range g.Edges() {
		if e.Node1 == id1 && e.Node2 != id2 {
			if err := g.addEdgeCopy(e, id2, e.Node2); err != nil {
				return fmt.Errorf("Redirect: %w", err)
			}
		}
		if e.Node2 == id1 && e.Node1 != id2 {
			if err := g.addEdgeCopy(e, e.Node1, id2); err != nil {
				return fmt.Errorf("Redirect: %w", err)
			}
		}
	}
	g.Unlink(id1, "")

	return nil
}

// Cut unlinks id but keeps paths through it intact: every predecessor p
// (edge p→id) is connected to every successor s (edge id→s), p ≠ s, with a
// copy of the incoming edge. For A→B, B→C, B→D cutting B yields A→C, A→D.
func (g *Graph) Cut(id string) error {
	n := g.Node(id)
	if n == nil {
		return fmt.Errorf("Cut %s: %w", id, ErrNodeNotFound)
	}
	var in, out []*Edge
	for _, e := range g.Edges() {
		if e.n1 == e.n2 {
			continue
		}
		if e.n2 == n.handle {
			in = append(in, e)
		}
		if e.n1 == n.handle {
			out = append(out, e)
		}
	}
	for _, ei := range in {
		for _, eo := range out {
			if ei.Node1 == eo.Node2 {
				continue
			}
			if err := g.addEdgeCopy(ei, ei.Node1, eo.Node2); err != nil {
				return fmt.Errorf("Cut: %w", err)
			}
		}
	}
	g.Unlink(id, "")

	return nil
}

// Insert places id between a and b: an edge a→b becomes a→id, id→b and an
// edge b→a becomes b→id, id→a. The node is created when missing. The direct
// a–b edges are removed.
func (g *Graph) Insert(id, a, b string) error {
	if g.Node(a) == nil || g.Node(b) == nil {
		return fmt.Errorf("Insert %s between %s and %s: %w", id, a, b, ErrNodeNotFound)
	}
	if _, err := g.AddNode(id); err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	for _, e := range g.Edges() {
		switch {
		case e.Node1 == a && e.Node2 == b:
			if err := g.insertCopies(e, a, id, b); err != nil {
				return err
			}
		case e.Node1 == b && e.Node2 == a:
			if err := g.insertCopies(e, b, id, a); err != nil {
				return err
			}
		}
	}
	g.Unlink(a, b)

	return nil
}

func (g *Graph) insertCopies(e *Edge, from, via, to string) error {
	if err := g.addEdgeCopy(e, from, via); err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	if err := g.addEdgeCopy(e, via, to); err != nil {
		return fmt.Errorf("Insert: %w", err)
	}

	return nil
}
