// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and queries.
//
// Determinism:
//   - Edges() enumerates in insertion order; removals compact without reordering.
//
// Concurrency:
//   - Every method takes g.mu; AddEdges validates and applies under one write lock.
package core

import (
	"fmt"
	"iter"
)

// AddEdges inserts every edge, merging attributes into edges whose triple already exists.
//
// Implementation:
//   - Stage 1: Under the write lock, verify every endpoint of every entry exists.
//   - Stage 2: Apply entries in order: new triple => append + index; known triple => Merge.
//
// Behavior highlights:
//   - All-or-nothing: one unknown endpoint rejects the whole batch.
//   - Self-loops are allowed. The empty label is a valid label.
//   - Parallel edges differing only by label are distinct edges.
//
// Errors:
//   - ErrReference wrapped with the offending triple.
//
// Complexity:
//   - Time O(len(entries)+Σ|attrs|).
func (g *Graph[K]) AddEdges(entries ...Edge[K]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range entries {
		if _, ok := g.nodeIndex[e.Src]; !ok {
			return fmt.Errorf("AddEdges(%v->%v %q): source: %w", e.Src, e.Dst, e.Label, ErrReference)
		}
		if _, ok := g.nodeIndex[e.Dst]; !ok {
			return fmt.Errorf("AddEdges(%v->%v %q): destination: %w", e.Src, e.Dst, e.Label, ErrReference)
		}
	}

	for _, e := range entries {
		k := e.Key()
		if i, ok := g.edgeIndex[k]; ok {
			rec := g.edges[i]
			rec.attrs = rec.attrs.Merge(e.Attrs)
			continue
		}
		i := len(g.edges)
		g.edges = append(g.edges, &edgeRecord[K]{key: k, attrs: e.Attrs.Clone()})
		g.edgeIndex[k] = i
		g.out[k.Src] = append(g.out[k.Src], i)
		g.in[k.Dst] = append(g.in[k.Dst], i)
	}

	return nil
}

// AddEdge is AddEdges for a single edge.
func (g *Graph[K]) AddEdge(src, dst K, label string, attrs Attrs) error {
	return g.AddEdges(Edge[K]{Src: src, Dst: dst, Label: label, Attrs: attrs})
}

// Edge returns the attribute store of the edge (src, dst, label).
func (g *Graph[K]) Edge(src, dst K, label string) (Attrs, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.edgeIndex[EdgeKey[K]{Src: src, Dst: dst, Label: label}]
	if !ok {
		return nil, false
	}

	return g.edges[i].attrs, true
}

// HasEdge reports whether the triple is present.
func (g *Graph[K]) HasEdge(src, dst K, label string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edgeIndex[EdgeKey[K]{Src: src, Dst: dst, Label: label}]

	return ok
}

// EdgeCount returns the number of edges.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a lazy, restartable sequence of edges in insertion order.
// Like Nodes, each iteration works on its own snapshot.
func (g *Graph[K]) Edges() iter.Seq[Edge[K]] {
	return func(yield func(Edge[K]) bool) {
		for _, e := range g.snapshotEdges() {
			if !yield(e) {
				return
			}
		}
	}
}

func (g *Graph[K]) snapshotEdges() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[K], len(g.edges))
	for i, rec := range g.edges {
		out[i] = rec.edge()
	}

	return out
}

func (r *edgeRecord[K]) edge() Edge[K] {
	return Edge[K]{Src: r.key.Src, Dst: r.key.Dst, Label: r.key.Label, Attrs: r.attrs}
}

// UpdateEdges replaces every edge's attributes with fn(edge).
// The edge passed to fn carries a private clone of its attributes.
// Semantics mirror UpdateNodes: no partial update on error, topology fixed,
// and edges whose store changed while fn ran are recomputed before the commit.
func (g *Graph[K]) UpdateEdges(fn func(e Edge[K]) (Attrs, error)) error {
	if fn == nil {
		return fmt.Errorf("UpdateEdges: %w", ErrNilFunc)
	}

	pending := make(map[EdgeKey[K]]storeUpdate)
	for {
		for _, e := range g.snapshotEdges() {
			if u, ok := pending[e.Key()]; ok && sameStore(u.seen, e.Attrs) {
				continue
			}
			seen := e.Attrs
			e.Attrs = seen.Clone()
			next, err := fn(e)
			if err != nil {
				return err
			}
			pending[e.Key()] = storeUpdate{seen: seen, next: next}
		}
		if g.installEdges(pending) {
			return nil
		}
	}
}

// installEdges commits pending if it still describes every current store.
func (g *Graph[K]) installEdges(pending map[EdgeKey[K]]storeUpdate) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, rec := range g.edges {
		u, ok := pending[rec.key]
		if !ok || !sameStore(u.seen, rec.attrs) {
			return false
		}
	}
	for _, rec := range g.edges {
		rec.attrs = ownAttrs(pending[rec.key].next)
	}

	return true
}

// RemoveEdge deletes the edge (src, dst, label).
//
// Errors:
//   - ErrEdgeNotFound if the triple is absent.
//
// Complexity:
//   - Time O(V+E) due to compaction and reindexing.
func (g *Graph[K]) RemoveEdge(src, dst K, label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := EdgeKey[K]{Src: src, Dst: dst, Label: label}
	i, ok := g.edgeIndex[k]
	if !ok {
		return fmt.Errorf("RemoveEdge(%v->%v %q): %w", src, dst, label, ErrEdgeNotFound)
	}

	copy(g.edges[i:], g.edges[i+1:])
	g.edges[len(g.edges)-1] = nil
	g.edges = g.edges[:len(g.edges)-1]
	g.reindexLocked()

	return nil
}
