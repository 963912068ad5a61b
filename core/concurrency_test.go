// Package core_test verifies that a frozen core.Graph serves concurrent readers.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/stepviz/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are serialized and
// every star edge lands in the hub's adjacency.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, core.NodeID(id), int64(id%9)+1))
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, g.Degree(0))
	require.Equal(t, num+1, g.NodeCount())
}

// TestConcurrentReadsAfterFreeze runs parallel readers over a frozen graph.
func TestConcurrentReadsAfterFreeze(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(core.NodeID(i), core.NodeID(i+1), 1))
	}
	g.Freeze()

	var wg sync.WaitGroup
	for r := 0; r < 16; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range g.Nodes() {
				_ = g.MustNeighbors(id)
			}
			require.Len(t, g.Edges(), 50)
		}()
	}
	wg.Wait()
}
