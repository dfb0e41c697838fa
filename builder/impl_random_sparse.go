// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like: each ordered pair (i,j), i ≠ j, is included
//     independently with probability p. Self-loops are never sampled.
//   - With WithSymmetric the trials run over unordered pairs i<j and each hit
//     emits both directions.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and draws nothing.
//
// Determinism:
//   - Trials run in i asc, j asc order, so a fixed seed fixes the edge set.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples a random graph over n vertices.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := cfg.addVertices(g, methodRandomSparse, n)
		if err != nil {
			return err
		}

		hit := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			}
			return cfg.rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			start := 0
			if cfg.symmetric {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err := cfg.link(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
