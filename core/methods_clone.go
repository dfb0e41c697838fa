// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep topology copy and read-only frames.
//
// Concurrency:
//   - Both operations hold the read lock only while copying catalogs.
package core

// Clone returns an independent graph with the same nodes and edges.
//
// Behavior highlights:
//   - Attribute stores are shallow-cloned: the maps are new, values are shared.
//   - Enumeration order is preserved.
//
// Complexity:
//   - Time O(V+E+Σ|attrs|).
func (g *Graph[K]) Clone() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph[K]{
		nodes: make([]*nodeRecord[K], len(g.nodes)),
		edges: make([]*edgeRecord[K], len(g.edges)),
	}
	for i, rec := range g.nodes {
		c.nodes[i] = &nodeRecord[K]{key: rec.key, attrs: rec.attrs.Clone()}
	}
	for i, rec := range g.edges {
		c.edges[i] = &edgeRecord[K]{key: rec.key, attrs: rec.attrs.Clone()}
	}
	c.reindexLocked()

	return c
}

// Frame is a consistent, read-only snapshot of a graph's catalogs.
//
// The attribute maps it holds are the ones installed at snapshot time; later
// commits install new maps and never touch these.
type Frame[K comparable] struct {
	Nodes []NodeEntry[K]
	Edges []Edge[K]

	index map[K]int
}

// Frame captures nodes and edges under one read lock.
// Complexity: O(V+E).
func (g *Graph[K]) Frame() *Frame[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	f := &Frame[K]{
		Nodes: make([]NodeEntry[K], len(g.nodes)),
		Edges: make([]Edge[K], len(g.edges)),
		index: make(map[K]int, len(g.nodes)),
	}
	for i, rec := range g.nodes {
		f.Nodes[i] = NodeEntry[K]{Key: rec.key, Attrs: rec.attrs}
		f.index[rec.key] = i
	}
	for i, rec := range g.edges {
		f.Edges[i] = rec.edge()
	}

	return f
}

// Index returns the position of key in f.Nodes.
func (f *Frame[K]) Index(key K) (int, bool) {
	i, ok := f.index[key]
	return i, ok
}

// Attrs returns the snapshot attributes of key, or nil.
func (f *Frame[K]) Attrs(key K) Attrs {
	if i, ok := f.index[key]; ok {
		return f.Nodes[i].Attrs
	}

	return nil
}
