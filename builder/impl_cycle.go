// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn (0..n-1), then edges i→(i+1) mod n in
//     increasing i, so the closing edge (n-1)→0 is emitted last.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := cfg.link(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
