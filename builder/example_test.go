package builder_test

import (
	"fmt"

	"github.com/katalvlaran/netgraph/builder"
)

// ExampleBuildGraph builds a wheel: a 4-ring plus the "Center" hub.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(5))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.NodeIDs(), g.EdgeLen(), g.Root().ID)

	// Output:
	// [0 1 2 3 Center] 8 Center
}

// ExampleByKind resolves a topology by name, as the CLI does.
func ExampleByKind() {
	ctor, err := builder.ByKind("path", 3, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, ctor)
	for _, e := range g.Edges() {
		fmt.Printf("%s→%s\n", e.Node1, e.Node2)
	}

	// Output:
	// A→B
	// B→C
}
