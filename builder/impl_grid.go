// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices); a 1×1 grid has no edges.
//   - Vertex IDs are "r,c" regardless of the ID scheme, in row-major order.
//   - For each (r,c): emit the right neighbour, then the bottom neighbour.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex key Grid assigns to cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := cfg.addVertex(g, methodGrid, GridID(r, c)); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := cfg.link(g, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.link(g, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
