// SPDX-License-Identifier: MIT
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Canonical model:
//   • Simple cycle C_n: the path v0 … v(n-1) closed by v(n-1) - v0.
//
// Contract:
//   • n ≥ 3, else ErrTooFewVertices.
//
// Complexity: O(n) time, O(n) space.

package builder

import "github.com/katalvlaran/stepviz/core"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, methodCycle, ids[i], ids[(i+1)%n], DefaultWeightFn); err != nil {
				return err
			}
		}

		return nil
	}
}
