package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/prim_kruskal"
)

func benchGraph() *core.Graph {
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

	return g
}

func BenchmarkPrim(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := prim_kruskal.NewPrim(g, 0)
		for done := false; !done; {
			s, _, done = s.Step(g)
		}
	}
}

func BenchmarkKruskal(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := prim_kruskal.NewKruskal(g)
		for done := false; !done; {
			s, _, done = s.Step(g)
		}
	}
}
