package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/netgraph/bfs"
	"github.com/katalvlaran/netgraph/core"
)

// ExampleBFS lists everything within two hops of a node.
func ExampleBFS() {
	g := core.NewGraph()
	g.AddEdge("me", "alice")
	g.AddEdge("me", "bob")
	g.AddEdge("alice", "carol")
	g.AddEdge("carol", "dave")

	var near []string
	bfs.BFS(g, "me", bfs.WithMaxDepth(2), bfs.WithVisit(func(n *core.Node) bool {
		near = append(near, n.ID)
		return false
	}))
	fmt.Println(near)

	// Output:
	// [me alice bob carol]
}
