// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and queries.
//
// Determinism:
//   - Nodes() and Keys() enumerate in insertion order.
//
// Concurrency:
//   - Every method takes g.mu; writers hold it for the whole batch.
package core

import (
	"fmt"
	"iter"
	"reflect"
)

// AddNodes inserts every entry, merging attributes into nodes that already exist.
//
// Implementation:
//   - Stage 1: Under the write lock, walk entries in order.
//   - Stage 2: Unknown key => append a record holding a copy of the entry's attributes.
//   - Stage 3: Known key => install Merge(old, new); the old map is left untouched.
//
// Behavior highlights:
//   - A nil attribute map is accepted and stored as an empty store.
//   - Duplicate keys within one batch merge in batch order.
//
// Errors:
//   - None today; the error return keeps the signature symmetric with AddEdges.
//
// Complexity:
//   - Time O(Σ|attrs|), Space O(Σ|attrs|).
func (g *Graph[K]) AddNodes(entries ...NodeEntry[K]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range entries {
		g.putNodeLocked(e.Key, e.Attrs)
	}

	return nil
}

// AddNode is AddNodes for a single entry.
func (g *Graph[K]) AddNode(key K, attrs Attrs) error {
	return g.AddNodes(NodeEntry[K]{Key: key, Attrs: attrs})
}

// putNodeLocked inserts or merges one node. Caller holds g.mu for writing.
func (g *Graph[K]) putNodeLocked(key K, attrs Attrs) {
	if i, ok := g.nodeIndex[key]; ok {
		rec := g.nodes[i]
		rec.attrs = rec.attrs.Merge(attrs)

		return
	}
	g.nodeIndex[key] = len(g.nodes)
	g.nodes = append(g.nodes, &nodeRecord[K]{key: key, attrs: attrs.Clone()})
}

// Node returns the attribute store of key. The returned map is a read-only view:
// the graph never mutates it, and callers must not either.
func (g *Graph[K]) Node(key K) (Attrs, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.nodeIndex[key]
	if !ok {
		return nil, false
	}

	return g.nodes[i].attrs, true
}

// HasNode reports whether key is present.
func (g *Graph[K]) HasNode(key K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodeIndex[key]

	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph[K]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Keys returns every node key in insertion order.
func (g *Graph[K]) Keys() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, len(g.nodes))
	for i, rec := range g.nodes {
		out[i] = rec.key
	}

	return out
}

// Nodes returns a lazy, restartable sequence of (key, attrs) in insertion order.
//
// Each iteration snapshots the catalog under the read lock, then yields without
// holding it, so the loop body may call back into the graph. Mutations made
// during one iteration become visible to the next one.
func (g *Graph[K]) Nodes() iter.Seq2[K, Attrs] {
	return func(yield func(K, Attrs) bool) {
		for _, e := range g.snapshotNodes() {
			if !yield(e.Key, e.Attrs) {
				return
			}
		}
	}
}

func (g *Graph[K]) snapshotNodes() []NodeEntry[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeEntry[K], len(g.nodes))
	for i, rec := range g.nodes {
		out[i] = NodeEntry[K]{Key: rec.key, Attrs: rec.attrs}
	}

	return out
}

// UpdateNodes replaces every node's attributes with fn(key, copy).
//
// Implementation:
//   - Stage 1: Snapshot the catalog and release the lock.
//   - Stage 2: Call fn on a private clone for every node, in insertion order.
//   - Stage 3: Under the write lock, check that no store changed and no node
//     was added since its fn call; if so, install every result.
//   - Stage 4: Otherwise release the lock and repeat from Stage 1, calling fn
//     again only for the nodes that changed or appeared.
//
// Behavior highlights:
//   - Topology cannot change through this path.
//   - A concurrent write to a node is never overwritten: fn sees it on the
//     next pass. fn may therefore run more than once for one key.
//   - fn runs without the lock held and may call back into g.
//   - A nil result installs an empty store.
//   - The first error from fn aborts the update; nothing is installed.
//   - Nodes removed concurrently are skipped.
//
// Errors:
//   - ErrNilFunc if fn is nil; otherwise whatever fn returned.
func (g *Graph[K]) UpdateNodes(fn func(key K, attrs Attrs) (Attrs, error)) error {
	if fn == nil {
		return fmt.Errorf("UpdateNodes: %w", ErrNilFunc)
	}

	pending := make(map[K]storeUpdate)
	for {
		for _, e := range g.snapshotNodes() {
			if u, ok := pending[e.Key]; ok && sameStore(u.seen, e.Attrs) {
				continue
			}
			next, err := fn(e.Key, e.Attrs.Clone())
			if err != nil {
				return err
			}
			pending[e.Key] = storeUpdate{seen: e.Attrs, next: next}
		}
		if g.installNodes(pending) {
			return nil
		}
	}
}

// installNodes commits pending if it still describes every current store.
func (g *Graph[K]) installNodes(pending map[K]storeUpdate) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, rec := range g.nodes {
		u, ok := pending[rec.key]
		if !ok || !sameStore(u.seen, rec.attrs) {
			return false
		}
	}
	for _, rec := range g.nodes {
		rec.attrs = ownAttrs(pending[rec.key].next)
	}

	return true
}

// ReplaceNodes atomically installs new attribute stores for the given nodes.
//
// Implementation:
//   - Stage 1: Under the write lock, verify every key exists.
//   - Stage 2: Install each map as-is (ownership passes to the graph).
//
// Behavior highlights:
//   - All-or-nothing: a missing key aborts before any store is replaced.
//   - Nodes not named keep their current map (reference equality).
//
// Errors:
//   - ErrNodeNotFound wrapped with the offending key.
//
// Notes:
//   - The caller must not mutate a map after handing it over.
func (g *Graph[K]) ReplaceNodes(updates ...NodeEntry[K]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, u := range updates {
		if _, ok := g.nodeIndex[u.Key]; !ok {
			return fmt.Errorf("ReplaceNodes(%v): %w", u.Key, ErrNodeNotFound)
		}
	}
	for _, u := range updates {
		g.nodes[g.nodeIndex[u.Key]].attrs = ownAttrs(u.Attrs)
	}

	return nil
}

// RemoveNode deletes key and every edge incident to it.
//
// Implementation:
//   - Stage 1: Drop incident edges, compacting the edge catalog.
//   - Stage 2: Drop the node, compacting the node catalog.
//   - Stage 3: Rebuild the position indices.
//
// Errors:
//   - ErrNodeNotFound if key is absent.
//
// Complexity:
//   - Time O(V+E): compaction keeps enumeration order stable.
func (g *Graph[K]) RemoveNode(key K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.nodeIndex[key]
	if !ok {
		return fmt.Errorf("RemoveNode(%v): %w", key, ErrNodeNotFound)
	}

	kept := g.edges[:0]
	for _, rec := range g.edges {
		if rec.key.Src != key && rec.key.Dst != key {
			kept = append(kept, rec)
		}
	}
	clear(g.edges[len(kept):])
	g.edges = kept

	copy(g.nodes[i:], g.nodes[i+1:])
	g.nodes[len(g.nodes)-1] = nil
	g.nodes = g.nodes[:len(g.nodes)-1]

	g.reindexLocked()

	return nil
}

// Clear removes every node and edge.
func (g *Graph[K]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = nil
	g.edges = nil
	g.reindexLocked()
}

// reindexLocked rebuilds nodeIndex, edgeIndex, out and in from the catalogs.
func (g *Graph[K]) reindexLocked() {
	g.nodeIndex = make(map[K]int, len(g.nodes))
	g.out = make(map[K][]int, len(g.nodes))
	g.in = make(map[K][]int, len(g.nodes))
	for i, rec := range g.nodes {
		g.nodeIndex[rec.key] = i
	}

	g.edgeIndex = make(map[EdgeKey[K]]int, len(g.edges))
	for i, rec := range g.edges {
		g.edgeIndex[rec.key] = i
		g.out[rec.key.Src] = append(g.out[rec.key.Src], i)
		g.in[rec.key.Dst] = append(g.in[rec.key.Dst], i)
	}
}

// ownAttrs normalizes a store handed to the graph.
// storeUpdate pairs the store fn saw with the store it produced.
type storeUpdate struct {
	seen Attrs
	next Attrs
}

// sameStore reports whether a and b are the same map.
func sameStore(a, b Attrs) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}

func ownAttrs(a Attrs) Attrs {
	if a == nil {
		return Attrs{}
	}

	return a
}
