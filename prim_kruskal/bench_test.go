// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/netgraph/builder"
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/prim_kruskal"
)

func benchGraph(b *testing.B) *core.Graph {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(0, 1)},
		builder.Grid(25, 20))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkKruskal measures a 500-node grid.
func BenchmarkKruskal(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures the same grid grown from its corner.
func BenchmarkPrim(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, "0,0")
	}
}
