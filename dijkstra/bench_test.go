package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dijkstra"
)

// BenchmarkDijkstra_Sparse runs to completion on a random connected graph
// of 100 nodes and ~300 edges.
func BenchmarkDijkstra_Sparse(b *testing.B) {
	const n = 100
	rng := rand.New(rand.NewSource(1))
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		_ = g.AddEdge(core.NodeID(rng.Intn(i)), core.NodeID(i), int64(1+rng.Intn(9)))
	}
	for i := 0; i < 2*n; i++ {
		_ = g.AddEdge(core.NodeID(rng.Intn(n)), core.NodeID(rng.Intn(n)), int64(1+rng.Intn(9)))
	}
	g.Freeze()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := dijkstra.New(g, 0, n-1)
		for done := false; !done; {
			s, _, done = s.Step(g)
		}
	}
}
