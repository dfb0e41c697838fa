// SPDX-License-Identifier: MIT
//
// File: find.go
// Role: Evaluate a pattern.Pattern against a core.Graph.
//
// Determinism:
//   - Bindings are produced in edge-insertion order of the first clause, then
//     of each joined clause in turn.

package query

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/pattern"
)

// Binding maps variable names to matched values: node variables hold the
// graph's key type K, label variables hold a string.
type Binding map[string]any

// Node returns the node key bound to name.
func Node[K comparable](b Binding, name string) (K, bool) {
	k, ok := b[name].(K)
	return k, ok
}

// Label returns the edge label bound to name.
func Label(b Binding, name string) (string, bool) {
	s, ok := b[name].(string)
	return s, ok
}

// Find returns every binding of p's variables that satisfies all clauses.
//
// Implementation:
//   - Stage 1: Snapshot the edge catalog once per iteration.
//   - Stage 2: For each clause, keep edges whose three positions satisfy their
//     predicates and whose repeated variables agree; project to rows.
//   - Stage 3: Hash-join rows clause by clause on the variables the clause shares
//     with everything joined so far (cross product when none are shared).
//   - Stage 4: Stop as soon as the running relation is empty.
//
// Behavior highlights:
//   - The sequence is lazy and restartable; each range re-evaluates against the
//     graph's current state.
//   - No match is an empty sequence, never an error.
//   - A clause of wildcards contributes one empty row per edge, so
//     the pattern "()-[]->()" yields EdgeCount() empty bindings.
//
// Complexity:
//   - Time O(C·E + Σ|join output|) for C clauses.
func Find[K comparable](g *core.Graph[K], p pattern.Pattern) iter.Seq[Binding] {
	return func(yield func(Binding) bool) {
		if g == nil || len(p.Clauses) == 0 {
			return
		}

		edges := slices.Collect(g.Edges())

		var rel []Binding
		bound := make(map[string]struct{})
		for i, c := range p.Clauses {
			rows := scan(edges, c)
			if i == 0 {
				rel = rows
			} else {
				rel = join(rel, rows, shared(c, bound))
			}
			if len(rel) == 0 {
				return
			}
			for _, t := range terms(c) {
				if !t.Wildcard() {
					bound[t.Var] = struct{}{}
				}
			}
		}

		for _, b := range rel {
			if !yield(b) {
				return
			}
		}
	}
}

// FindString parses src and calls Find.
func FindString[K comparable](g *core.Graph[K], src string) (iter.Seq[Binding], error) {
	p, err := pattern.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return Find(g, p), nil
}

// Count returns the number of bindings Find would yield.
func Count[K comparable](g *core.Graph[K], p pattern.Pattern) int {
	n := 0
	for range Find(g, p) {
		n++
	}

	return n
}

func terms(c pattern.Clause) [3]pattern.Term { return [3]pattern.Term{c.Src, c.Label, c.Dst} }

// scan filters edges by one clause and projects matches onto its variables.
func scan[K comparable](edges []core.Edge[K], c pattern.Clause) []Binding {
	ts := terms(c)
	var rows []Binding
	for _, e := range edges {
		vals := [3]any{e.Src, e.Label, e.Dst}
		row, ok := bindRow(ts, vals)
		if ok {
			rows = append(rows, row)
		}
	}

	return rows
}

func bindRow(ts [3]pattern.Term, vals [3]any) (Binding, bool) {
	row := make(Binding, 3)
	for i, t := range ts {
		if !t.Match(stringOf(vals[i])) {
			return nil, false
		}
		if t.Wildcard() {
			continue
		}
		if prev, ok := row[t.Var]; ok && prev != vals[i] {
			return nil, false
		}
		row[t.Var] = vals[i]
	}

	return row, true
}

func stringOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// shared lists the clause's variables already bound by earlier clauses, deduplicated.
func shared(c pattern.Clause, bound map[string]struct{}) []string {
	var out []string
	for _, t := range terms(c) {
		if t.Wildcard() {
			continue
		}
		if _, ok := bound[t.Var]; !ok {
			continue
		}
		if !slices.Contains(out, t.Var) {
			out = append(out, t.Var)
		}
	}

	return out
}

// joinKey holds up to three shared values; a clause has only three positions.
type joinKey [3]any

func keyOf(b Binding, vars []string) joinKey {
	var k joinKey
	for i, v := range vars {
		k[i] = b[v]
	}

	return k
}

// join is an inner hash join of left and right on vars.
func join(left, right []Binding, vars []string) []Binding {
	index := make(map[joinKey][]Binding, len(right))
	for _, r := range right {
		k := keyOf(r, vars)
		index[k] = append(index[k], r)
	}

	var out []Binding
	for _, l := range left {
		for _, r := range index[keyOf(l, vars)] {
			m := make(Binding, len(l)+len(r))
			maps.Copy(m, l)
			maps.Copy(m, r)
			out = append(out, m)
		}
	}

	return out
}
