// SPDX-License-Identifier: MIT

package stepper

import (
	"fmt"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/prim_kruskal"
)

// Listing returns a copy of the pseudocode for a. It panics on an invalid tag.
func Listing(a Algorithm) []string {
	switch a {
	case BFS:
		return bfs.Pseudocode()
	case DFS:
		return dfs.Pseudocode()
	case Dijkstra:
		return dijkstra.Pseudocode()
	case Prim:
		return prim_kruskal.PrimPseudocode()
	case Kruskal:
		return prim_kruskal.KruskalPseudocode()
	default:
		panic(fmt.Sprintf("stepper: no listing for %v", a))
	}
}

// Line returns line pc of a's listing, or false when pc is out of range.
func Line(a Algorithm, pc int) (string, bool) {
	l := Listing(a)
	if pc < 0 || pc >= len(l) {
		return "", false
	}

	return l[pc], true
}
