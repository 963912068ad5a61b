// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   • Erdős–Rényi-like G(n, p): each unordered pair {i, j}, i < j, is kept
//     independently with probability p.
//
// Contract:
//   • n ≥ 1, else ErrTooFewVertices.
//   • 0 ≤ p ≤ 1, else ErrInvalidProbability.
//   • cfg.rng must be non-nil, else ErrNeedRandSource.
//   • Pairs are sampled in lexicographic order, one Float64 draw each.
//
// Complexity: O(n²) time, O(n + m) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
)

// RandomSparse returns a Constructor that samples G(n, p).
// The result may be disconnected.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodRandomSparse, n, minRandomNodes); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.3f: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addNodes(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = addEdge(g, cfg, methodRandomSparse, ids[i], ids[j], randomWeightFn); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
