package bfs_test

import (
	"testing"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/core"
)

// BenchmarkBFS_Chain steps BFS to completion over a linear chain of N+1 nodes.
// Each step clones the state, so the run is O(V·(V+E)) by construction.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 200
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_ = g.AddEdge(core.NodeID(i), core.NodeID(i+1), 1)
	}
	g.Freeze()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := bfs.New(g, 0)
		for done := false; !done; {
			s, _, done = s.Step(g)
		}
	}
}
