// SPDX-License-Identifier: MIT
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn     = identity            (0, 1, 2, ...)
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • weightFn = nil                 (each constructor picks its own default)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/stepviz/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn func(int) core.NodeID
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; nil selects the constructor default.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: identityID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one weight, falling back to def when no WeightFn is set.
func (c builderConfig) weight(def WeightFn) int64 {
	if c.weightFn != nil {
		return c.weightFn(c.rng)
	}

	return def(c.rng)
}

func identityID(i int) core.NodeID { return core.NodeID(i) }
