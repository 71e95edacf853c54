// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/netgraph/core"
)

// BenchmarkAddEdge measures appending star spokes to a growing graph.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i))
	}
}

// BenchmarkRemoveNode measures cascading removal including compaction.
func BenchmarkRemoveNode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph()
		for j := 0; j < 256; j++ {
			_, _ = g.AddEdge(fmt.Sprintf("N%d", j), fmt.Sprintf("N%d", (j+1)%256))
		}
		b.StartTimer()
		for j := 0; j < 256; j++ {
			g.RemoveNode(fmt.Sprintf("N%d", j))
		}
	}
}

// BenchmarkSplit measures component partitioning of many small triangles.
func BenchmarkSplit(b *testing.B) {
	g := core.NewGraph()
	for j := 0; j < 300; j += 3 {
		a, c, d := fmt.Sprint(j), fmt.Sprint(j+1), fmt.Sprint(j+2)
		_, _ = g.AddEdge(a, c)
		_, _ = g.AddEdge(c, d)
		_, _ = g.AddEdge(d, a)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Split()
	}
}
