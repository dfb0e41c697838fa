// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// impl_isolated.go - Isolated(n) constructor: n vertices, no edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

const (
	methodIsolated   = "Isolated"
	minIsolatedNodes = 1
)

// Isolated returns a Constructor that adds n vertices via cfg.idFn and no edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedNodes, ErrTooFewVertices)
		}
		_, err := cfg.addVertices(g, methodIsolated, n)

		return err
	}
}

// Offset returns a Constructor that runs inner with vertex IDs shifted by
// offset, so two copies of one topology can be placed side by side.
func Offset(offset int, inner Constructor) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if inner == nil {
			return fmt.Errorf("Offset: nil constructor: %w", ErrConstructFailed)
		}
		base := cfg.idFn
		cfg.idFn = func(i int) string { return base(i + offset) }

		return inner(g, cfg)
	}
}
