package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/stepviz/core"
)

// DOT writes g as an undirected Graphviz graph coloured by snap. Node
// positions come from the circle layout with pinned coordinates, so
// `neato -n` reproduces the canvas exactly.
func DOT(w io.Writer, g *core.Graph, snap core.Snapshot) error {
	bw := bufio.NewWriter(w)
	nodes := g.Nodes()
	pos := CircleLayout(nodes)

	fmt.Fprintln(bw, "graph stepviz {")
	fmt.Fprintf(bw, "  node [shape=circle style=filled fontcolor=white color=%q penwidth=3];\n", ColorStroke)
	fmt.Fprintf(bw, "  edge [fontcolor=%q];\n", ColorLabel)
	for _, id := range nodes {
		p := pos[id]
		fmt.Fprintf(bw, "  %d [fillcolor=%q pos=\"%.1f,%.1f!\"];\n",
			id, NodeColor(snap.OnPath(id), snap.IsHighlighted(id)), p.X, DefaultCanvas.Height-p.Y)
	}
	for _, e := range g.Edges() {
		color, width := EdgeStyle(snap.PathIncludes(e), snap.InTree(e))
		fmt.Fprintf(bw, "  %d -- %d [label=\"%d\" color=%q penwidth=%d];\n", e.U, e.V, e.W, color, width)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
