package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/stepper"
)

// Marker prefixes the pseudocode line at the frame's PC.
const Marker = "=>"

// Text writes a terminal view of f: a header, the pseudocode with the current
// line marked, and the snapshot contents.
func Text(w io.Writer, f playback.Frame) error {
	bw := bufio.NewWriter(w)
	if !f.Algorithm.Valid() {
		fmt.Fprintf(bw, "[%v] no run\n", f.Status)
		return bw.Flush()
	}

	fmt.Fprintf(bw, "%v  step %d  [%v]\n", f.Algorithm, f.Step, f.Status)
	for i, line := range stepper.Listing(f.Algorithm) {
		mark := "  "
		if i == f.PC {
			mark = Marker
		}
		fmt.Fprintf(bw, "%s %2d %s\n", mark, i, line)
	}
	writeSnapshot(bw, f.Snapshot)

	return bw.Flush()
}

func writeSnapshot(w io.Writer, s core.Snapshot) {
	fmt.Fprintf(w, "highlighted: %s\n", joinIDs(s.Highlighted, " "))
	if len(s.Path) > 0 {
		fmt.Fprintf(w, "path:        %s\n", joinIDs(s.Path, " → "))
	}
	if len(s.TreeEdges) > 0 {
		parts := make([]string, len(s.TreeEdges))
		for i, e := range s.TreeEdges {
			parts[i] = fmt.Sprintf("%d-%d(%d)", e.U, e.V, e.W)
		}
		fmt.Fprintf(w, "tree:        %s  weight %d\n", strings.Join(parts, " "), s.TreeWeight())
	}
}

func joinIDs(ids []core.NodeID, sep string) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(int(id))
	}

	return strings.Join(parts, sep)
}
