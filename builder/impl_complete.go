// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits i→j for every pair i<j in lexicographic order: n(n-1)/2 edges,
//     n(n-1) with WithSymmetric.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(g, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.link(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
