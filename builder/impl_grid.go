// SPDX-License-Identifier: MIT
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 4-neighbourhood lattice; cell (r, c) has index r*cols + c.
//   • For each cell in row-major order: right edge first, then down edge.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1, else ErrTooFewVertices.
//
// Complexity: O(rows·cols) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids, err := addNodes(g, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err = addEdge(g, cfg, methodGrid, ids[i], ids[i+1], DefaultWeightFn); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(g, cfg, methodGrid, ids[i], ids[i+cols], DefaultWeightFn); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
