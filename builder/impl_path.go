// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)→i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := cfg.link(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
