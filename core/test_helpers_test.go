// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep concurrency tests free of *testing.T usage inside goroutines.

package core_test

import (
	"reflect"
	"slices"
	"testing"

	"github.com/katalvlaran/lvgraph/core"
	"github.com/stretchr/testify/require"
)

// Common node keys used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Common edge labels.
const (
	LabelNone    = ""
	LabelFollows = "follows"
	LabelLikes   = "likes"
)

// Common concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NRounds         = 100
)

// newTriangle builds A->B->C->A with a "w" attribute on every node and edge.
func newTriangle(t *testing.T) *core.Graph[string] {
	t.Helper()

	g := core.New[string]()
	require.NoError(t, g.AddNodes(
		core.NodeEntry[string]{Key: NodeA, Attrs: core.Attrs{"w": 1}},
		core.NodeEntry[string]{Key: NodeB, Attrs: core.Attrs{"w": 2}},
		core.NodeEntry[string]{Key: NodeC, Attrs: core.Attrs{"w": 3}},
	))
	require.NoError(t, g.AddEdges(
		core.Edge[string]{Src: NodeA, Dst: NodeB, Label: LabelFollows, Attrs: core.Attrs{"w": 10}},
		core.Edge[string]{Src: NodeB, Dst: NodeC, Label: LabelFollows, Attrs: core.Attrs{"w": 20}},
		core.Edge[string]{Src: NodeC, Dst: NodeA, Label: LabelLikes, Attrs: core.Attrs{"w": 30}},
	))

	return g
}

// nodeKeys drains g.Nodes() into a key slice.
func nodeKeys[K comparable](g *core.Graph[K]) []K {
	var out []K
	for k := range g.Nodes() {
		out = append(out, k)
	}

	return out
}

// edgeKeys drains g.Edges() into a slice of identifying triples.
func edgeKeys[K comparable](g *core.Graph[K]) []core.EdgeKey[K] {
	var out []core.EdgeKey[K]
	for e := range g.Edges() {
		out = append(out, e.Key())
	}

	return out
}

// sortedKeys returns a sorted copy of keys.
func sortedKeys(keys []string) []string {
	out := slices.Clone(keys)
	slices.Sort(out)

	return out
}

// sameMap reports whether two stores are the same map (reference equality).
func sameMap(a, b core.Attrs) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}
