// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stepviz/core"
)

// DefaultEdgeWeight is the weight of deterministic topologies when no
// WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// Random graph weight range, inclusive.
const (
	MinRandomWeight int64 = 1
	MaxRandomWeight int64 = 9
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 { return DefaultEdgeWeight }

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics unless core.MinWeight ≤ value ≤ core.MaxWeight.
func ConstantWeightFn(value int64) WeightFn {
	if value < core.MinWeight || value > core.MaxWeight {
		panic(fmt.Sprintf("ConstantWeightFn: value must be in [%d, %d], got %d", core.MinWeight, core.MaxWeight, value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max]
// inclusive. Panics unless core.MinWeight ≤ min ≤ max ≤ core.MaxWeight. With a nil rng it
// yields min, keeping the fallback deterministic.
func UniformWeightFn(min, max int64) WeightFn {
	if min < core.MinWeight || max < min || max > core.MaxWeight {
		panic(fmt.Sprintf("UniformWeightFn: require %d ≤ min ≤ max ≤ %d, got min=%d, max=%d", core.MinWeight, core.MaxWeight, min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// randomWeightFn is the default for random topologies: U{1..9}.
var randomWeightFn = UniformWeightFn(MinRandomWeight, MaxRandomWeight)
