// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// impl_wheel.go - Wheel(n) constructor: W_n = C_{n-1} + hub "Center".
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); the rim is Cycle(n-1) with IDs 0..n-2.
//   - After the rim, emits spokes Center→rim[i] in increasing i.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel of n vertices.
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		if err := cfg.addVertex(g, methodWheel, centerVertexID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := cfg.link(g, methodWheel, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
