// SPDX-License-Identifier: MIT

// Package builder is the graph provider for stepviz: it assembles the
// immutable *core.Graph a run is started on.
//
// The package offers the following key components:
//
//   - Orchestration:
//     - Constructor:      a closure that mutates a graph under a resolved config.
//     - BuildGraph:       creates a graph and applies constructors in order.
//   - Configuration primitives:
//     - BuilderOption:    a function that mutates builderConfig before use.
//     - builderConfig:    holds RNG, node-ID scheme and weight function.
//   - Topologies:
//     - Path, Cycle, Star, Wheel, Complete, Grid.
//     - RandomSparse:     Erdős–Rényi-like G(n, p).
//     - RandomConnected:  shuffled spanning path plus one extra edge attempt
//     per node, weights in [1, 9] unless overridden.
//     - EdgeList:         "u v [w]" text, one edge per line.
//   - Edge-weight distributions (WeightFn):
//     - ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order produce identical
//     graphs, edge insertion order included. Insertion order matters: it fixes
//     adjacency order and therefore every traversal.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; constructors themselves return sentinel errors.
//
// Errors are wrapped with the constructor name:
//
//	"Cycle: n=2 < min=3: builder: parameter too small"
//
// and are checked with errors.Is against ErrTooFewVertices, ErrNeedRandSource,
// ErrInvalidProbability, ErrBadEdgeList or ErrConstructFailed.
package builder
