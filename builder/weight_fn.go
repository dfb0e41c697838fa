package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces an edge weight from an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn always yields value. Panics if value < 0 or NaN.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(*rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [lo, hi). With a nil RNG, or lo == hi,
// it yields lo. Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// NormalWeightFn samples N(mean, stddev) clipped at 0. With a nil RNG it
// yields max(mean, 0). Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return math.Max(mean, 0)
		}
		return math.Max(rng.NormFloat64()*stddev+mean, 0)
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight is WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi float64) BuilderOption { return WithWeightFn(UniformWeightFn(lo, hi)) }
