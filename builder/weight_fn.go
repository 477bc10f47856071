// SPDX-License-Identifier: MIT
// Package: graphd/builder
//
// weight_fn.go - edge-weight generators for weighted fixtures.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphd/core"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns core.DefaultWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return core.DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. A nil rng yields core.DefaultWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
