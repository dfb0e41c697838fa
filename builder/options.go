// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvgraph/core"
)

// BuilderOption customizes the resolved builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
// Each BuildGraph call resolves options afresh, so two builds with the same
// seed draw the same sequence.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn writes fn(rng) under AttrWeight on every emitted edge.
// Symmetric pairs share one draw. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithLabel sets the label of every emitted edge.
func WithLabel(label string) BuilderOption {
	return func(c *builderConfig) { c.label = label }
}

// WithEdgeAttrs copies attrs onto every emitted edge. The weight attribute,
// when configured, overrides an AttrWeight entry in attrs.
func WithEdgeAttrs(attrs core.Attrs) BuilderOption {
	snapshot := attrs.Clone()
	return func(c *builderConfig) { c.edgeAttrs = snapshot }
}

// WithNodeAttrs copies attrs onto every inserted vertex.
func WithNodeAttrs(attrs core.Attrs) BuilderOption {
	snapshot := attrs.Clone()
	return func(c *builderConfig) { c.nodeAttrs = snapshot }
}

// WithSymmetric makes every emitted pair bidirectional: u→v and v→u.
// Self-loops are emitted once.
func WithSymmetric() BuilderOption {
	return func(c *builderConfig) { c.symmetric = true }
}

// WithPartitionPrefix sets the CompleteBipartite side prefixes.
// Empty values fall back to "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}
