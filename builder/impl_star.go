// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the hub with the fixed ID "Center", then leaves via cfg.idFn
//     for i = 1..n-1.
//   - Emits spokes leaf→Center in increasing leaf order, so every leaf
//     points at the hub; WithSymmetric adds Center→leaf.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := cfg.addVertex(g, methodStar, centerVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := cfg.addVertex(g, methodStar, leaf); err != nil {
				return err
			}
			if err := cfg.link(g, methodStar, leaf, centerVertexID); err != nil {
				return err
			}
		}

		return nil
	}
}
