// SPDX-License-Identifier: MIT
//
// helpers.go - small shared routines for the impl_* constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
)

// checkMin returns the canonical "too small" error for method.
func checkMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}

// addNodes registers ids idFn(0..n-1) in index order and returns them.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) ([]core.NodeID, error) {
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddNode(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge inserts u-v with a weight drawn from cfg (default def).
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v core.NodeID, def WeightFn) error {
	if err := g.AddEdge(u, v, cfg.weight(def)); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, u, v, err)
	}

	return nil
}
