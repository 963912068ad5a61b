package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dijkstra"
)

// ExampleState_Step runs Dijkstra on a triangle where the two-hop route
// beats the direct edge.
func ExampleState_Step() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	s, err := dijkstra.New(g, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	steps := 0
	for done := false; !done; steps++ {
		s, _, done = s.Step(g)
	}
	for _, v := range g.Nodes() {
		d, _ := s.Dist(v)
		fmt.Printf("dist[%d] = %d\n", v, d)
	}
	fmt.Println("path:", s.Path())
	fmt.Println("steps:", steps)

	// Output:
	// dist[0] = 0
	// dist[1] = 1
	// dist[2] = 3
	// path: [0 1 2]
	// steps: 5
}
