// SPDX-License-Identifier: MIT
//
// impl_path.go - implementation of Path(n) constructor.
//
// Canonical model:
//   • Simple path P_n: v0 - v1 - … - v(n-1).
//   • n = 1 yields a single isolated node.
//
// Contract:
//   • n ≥ 1, else ErrTooFewVertices.
//   • Edges are added in index order.
//
// Complexity: O(n) time, O(n) space.

package builder

import "github.com/katalvlaran/stepviz/core"

// Path returns a Constructor that builds the simple path P_n.
//
// Example:
//
//	g, _ := BuildGraph(nil, Path(4)) // 0-1-2-3
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodPath, ids[i-1], ids[i], DefaultWeightFn); err != nil {
				return err
			}
		}

		return nil
	}
}
