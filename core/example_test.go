package core_test

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph (static layout, distance 10):
	g := core.NewGraph()

	// 2) Add edges (auto-adds nodes A, B, C):
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")

	// 3) Inspect nodes and edges:
	fmt.Println("Nodes:", g.NodeIDs())
	fmt.Println("Edge B→A linked?", g.Edge("B", "A") != nil)
	fmt.Println("Density:", g.Density())

	// 4) Remove a node and its edges:
	g.RemoveNode("B")
	fmt.Println("After removing B:", g.NodeIDs(), g.EdgeLen())

	// Output:
	// Nodes: [A B C]
	// Edge B→A linked? true
	// Density: 1
	// After removing B: [A C] 1
}

// ExampleGraph_Split shows partitioning into connected components.
func ExampleGraph_Split() {
	g := core.NewGraph()
	g.AddEdge("a", "b")
	g.AddEdge("x", "y")
	g.AddEdge("y", "z")

	for _, part := range g.Split() {
		fmt.Println(part.NodeIDs())
	}

	// Output:
	// [x y z]
	// [a b]
}

// ExampleGraph_Cut shows rewiring around a removed hop.
func ExampleGraph_Cut() {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("B", "D")

	_ = g.Cut("B")
	for _, e := range g.Edges() {
		fmt.Printf("%s→%s\n", e.Node1, e.Node2)
	}

	// Output:
	// A→C
	// A→D
}
