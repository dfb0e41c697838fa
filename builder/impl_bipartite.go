// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left IDs "<left><i>", right IDs "<right><j>" (defaults "L0", "R0").
//   - Emits left[i]→right[j] for i asc, then j asc.
//
// Complexity: O(n1·n2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := make([]string, n1)
		for i := range left {
			left[i] = fmt.Sprintf("%s%d", cfg.leftPrefix, i)
			if err := cfg.addVertex(g, methodCompleteBipartite, left[i]); err != nil {
				return err
			}
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = fmt.Sprintf("%s%d", cfg.rightPrefix, j)
			if err := cfg.addVertex(g, methodCompleteBipartite, right[j]); err != nil {
				return err
			}
		}

		for _, u := range left {
			for _, v := range right {
				if err := cfg.link(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
