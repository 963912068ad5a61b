// SPDX-License-Identifier: MIT
//
// impl_random_connected.go - implementation of RandomConnected(n) constructor.
//
// Canonical model:
//   • Draw a random permutation π of 0..n-1 and join π[i-1] - π[i]; the
//     result is a spanning path, so the graph is connected.
//   • Then, for each node i in index order, draw j ∈ [0, n) and add i - j
//     unless i == j or the edge already exists.
//   • Weights ∼ U{1..9} unless a WeightFn is configured.
//
// Contract:
//   • n ≥ 1, else ErrTooFewVertices.
//   • cfg.rng must be non-nil, else ErrNeedRandSource.
//
// Complexity: O(n·d) time where d is the mean degree, O(n) extra space.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepviz/core"
)

// RandomConnected returns a Constructor that builds a random connected graph
// with n nodes, between n-1 and 2n-1 edges.
func RandomConnected(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodRandomConnected, n, minRandomNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}
		ids, err := addNodes(g, cfg, methodRandomConnected, n)
		if err != nil {
			return err
		}

		perm := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodRandomConnected, ids[perm[i-1]], ids[perm[i]], randomWeightFn); err != nil {
				return err
			}
		}

		for i := 0; i < n; i++ {
			j := cfg.rng.Intn(n)
			if i == j {
				continue
			}
			err = addEdge(g, cfg, methodRandomConnected, ids[i], ids[j], randomWeightFn)
			if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				continue
			}
			if err != nil {
				return err
			}
		}

		return nil
	}
}
