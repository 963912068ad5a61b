// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor, or that a
// build produced no nodes at all.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed
// (nil graph, nil constructor, rejected edge).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadEdgeList indicates an edge-list line that cannot be parsed.
var ErrBadEdgeList = errors.New("builder: malformed edge list")

// ErrUnknownTopology indicates a topology name Named does not recognize.
var ErrUnknownTopology = errors.New("builder: unknown topology")
