// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// config.go - internal configuration, deterministic defaults and the two
// emission helpers every constructor goes through.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn         ("0","1","2",...)
//   • rng        = nil                 (pure unless seeded)
//   • weightFn   = nil                 (no weight attribute)
//   • label      = ""                  (unlabelled edges)
//   • symmetric  = false               (one edge per emitted pair)
//   • left/right = "L" / "R"

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvgraph/core"
)

// AttrWeight is the edge attribute written when a weight function is set.
const AttrWeight = "weight"

// centerVertexID is the fixed hub ID used by Star and Wheel.
const centerVertexID = "Center"

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value; edgeAttrs and nodeAttrs are cloned on every use.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	label     string
	edgeAttrs core.Attrs
	nodeAttrs core.Attrs
	symmetric bool

	leftPrefix  string
	rightPrefix string
}

// newBuilderConfig applies opts in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// addVertex inserts id with a private copy of the configured node attributes.
func (cfg builderConfig) addVertex(g *core.Graph[string], method, id string) error {
	if err := g.AddNode(id, cfg.nodeAttrs.Clone()); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
	}

	return nil
}

// addVertices inserts ids 0..n-1 via cfg.idFn and returns them in order.
func (cfg builderConfig) addVertices(g *core.Graph[string], method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := cfg.addVertex(g, method, ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// link emits u→v, and v→u as well when the config is symmetric. Both
// directions carry the same weight draw.
func (cfg builderConfig) link(g *core.Graph[string], method, u, v string) error {
	attrs := cfg.edgeAttrs.Clone()
	if cfg.weightFn != nil {
		attrs[AttrWeight] = cfg.weightFn(cfg.rng)
	}

	entries := []core.Edge[string]{{Src: u, Dst: v, Label: cfg.label, Attrs: attrs}}
	if cfg.symmetric && u != v {
		entries = append(entries, core.Edge[string]{Src: v, Dst: u, Label: cfg.label, Attrs: attrs.Clone()})
	}
	if err := g.AddEdges(entries...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
