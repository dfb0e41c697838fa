// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// api.go - public entry-point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go, one topology per file.
//   - Determinism: same options/seed and constructor order produce identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// emit nodes and edges in a stable, documented order.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new graph, resolves the builder configuration from
// bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Composition:
//   - Constructors share the same ID scheme, so Path(3) followed by Star(3)
//     shares vertex "1" and "2"; node attributes merge on re-insertion.
//   - Edges re-emitted with the same (src, dst, label) merge as well.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.New[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph with freshly resolved
// options. Unlike BuildGraph, a failure leaves whatever the earlier
// constructors added in place.
func Apply(g *core.Graph[string], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
