// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries and catalog statistics.
package core

import "fmt"

// OutEdges returns the edges leaving key, in insertion order.
//
// Errors:
//   - ErrNodeNotFound if key is absent.
//
// Complexity:
//   - Time O(outdeg(key)).
func (g *Graph[K]) OutEdges(key K) ([]Edge[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodeIndex[key]; !ok {
		return nil, fmt.Errorf("OutEdges(%v): %w", key, ErrNodeNotFound)
	}

	return g.collectLocked(g.out[key]), nil
}

// InEdges returns the edges entering key, in insertion order.
func (g *Graph[K]) InEdges(key K) ([]Edge[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodeIndex[key]; !ok {
		return nil, fmt.Errorf("InEdges(%v): %w", key, ErrNodeNotFound)
	}

	return g.collectLocked(g.in[key]), nil
}

func (g *Graph[K]) collectLocked(positions []int) []Edge[K] {
	out := make([]Edge[K], len(positions))
	for i, p := range positions {
		out[i] = g.edges[p].edge()
	}

	return out
}

// Neighbors returns the distinct destinations of key's out-edges, first-seen order.
func (g *Graph[K]) Neighbors(key K) ([]K, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodeIndex[key]; !ok {
		return nil, fmt.Errorf("Neighbors(%v): %w", key, ErrNodeNotFound)
	}

	seen := make(map[K]struct{}, len(g.out[key]))
	out := make([]K, 0, len(g.out[key]))
	for _, p := range g.out[key] {
		d := g.edges[p].key.Dst
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	return out, nil
}

// Degree returns the in- and out-degree of key. A self-loop counts once in each.
func (g *Graph[K]) Degree(key K) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodeIndex[key]; !ok {
		return 0, 0, fmt.Errorf("Degree(%v): %w", key, ErrNodeNotFound)
	}

	return len(g.in[key]), len(g.out[key]), nil
}

// Stats summarizes the catalogs.
// Complexity: O(V+E).
func (g *Graph[K]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{Nodes: len(g.nodes), Edges: len(g.edges)}
	for _, rec := range g.edges {
		if rec.key.Src == rec.key.Dst {
			s.SelfLoops++
		}
	}
	for _, rec := range g.nodes {
		outDeg, inDeg := len(g.out[rec.key]), len(g.in[rec.key])
		if outDeg == 0 {
			s.Dangling++
		}
		if outDeg == 0 && inDeg == 0 {
			s.Isolated++
		}
	}

	return s
}
