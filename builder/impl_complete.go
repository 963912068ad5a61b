// SPDX-License-Identifier: MIT
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Canonical model:
//   • Complete graph K_n: every unordered pair {i, j}, i < j, once.
//
// Contract:
//   • n ≥ 1, else ErrTooFewVertices.
//   • Pairs are emitted in lexicographic (i, j) order.
//
// Complexity: O(n²) time and space.

package builder

import "github.com/katalvlaran/stepviz/core"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, methodComplete, ids[i], ids[j], DefaultWeightFn); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
