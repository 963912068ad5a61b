// SPDX-License-Identifier: MIT
//
// topology.go - name-based selection of a constructor, used by the drivers.
//
// Contract:
//   • An empty name selects TopologyRandom.
//   • Grid with Rows and Cols unset is laid out ⌊√Nodes⌋ rows by
//     ⌈Nodes/rows⌉ columns.
//   • Unknown names yield ErrUnknownTopology.

package builder

import (
	"fmt"
	"math"
	"strings"
)

// Topology names accepted by Named.
const (
	TopologyRandom   = "random"
	TopologyPath     = "path"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyWheel    = "wheel"
	TopologyComplete = "complete"
	TopologyGrid     = "grid"
	TopologySparse   = "sparse"
)

// Topologies returns every name Named accepts.
func Topologies() []string {
	return []string{
		TopologyRandom, TopologyPath, TopologyCycle, TopologyStar,
		TopologyWheel, TopologyComplete, TopologyGrid, TopologySparse,
	}
}

// TopologySpec parameterizes Named. Rows and Cols apply to grid, P to sparse.
type TopologySpec struct {
	Name  string
	Nodes int
	Rows  int
	Cols  int
	P     float64
}

// Named returns the Constructor for spec.Name.
func Named(spec TopologySpec) (Constructor, error) {
	n := spec.Nodes
	switch strings.ToLower(strings.TrimSpace(spec.Name)) {
	case "", TopologyRandom:
		return RandomConnected(n), nil
	case TopologyPath:
		return Path(n), nil
	case TopologyCycle:
		return Cycle(n), nil
	case TopologyStar:
		return Star(n), nil
	case TopologyWheel:
		return Wheel(n), nil
	case TopologyComplete:
		return Complete(n), nil
	case TopologyGrid:
		rows, cols := spec.Rows, spec.Cols
		if rows == 0 && cols == 0 && n > 0 {
			rows = int(math.Sqrt(float64(n)))
			cols = (n + rows - 1) / rows
		}
		return Grid(rows, cols), nil
	case TopologySparse:
		return RandomSparse(n, spec.P), nil
	default:
		return nil, fmt.Errorf("Named: %q: %w", spec.Name, ErrUnknownTopology)
	}
}
