package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/core"
)

// ExampleState_Step drives BFS over a small star one step at a time and
// prints the highlighted set whenever it grows.
func ExampleState_Step() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(0, 3, 1)

	s, err := bfs.New(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.Snapshot().Highlighted)

	last := 1
	for {
		next, snap, done := s.Step(g)
		s = next
		if len(snap.Highlighted) != last {
			last = len(snap.Highlighted)
			fmt.Println(snap.Highlighted)
		}
		if done {
			break
		}
	}
	fmt.Println("pc at end:", bfs.Pseudocode()[s.PC()])

	// Output:
	// [0]
	// [0 1]
	// [0 1 2]
	// [0 1 2 3]
	// pc at end:   return visited
}
