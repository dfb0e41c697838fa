// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, node/edge records, public entry types, sentinel errors, constructor.
// Concurrency:
//   - mu guards nodes, nodeIndex, edges, edgeIndex, out and in together.
// Invariants:
//   - nodeIndex[k] is the position of k in nodes; edgeIndex likewise for edges.
//   - out[k]/in[k] hold edge positions in ascending (insertion) order.
//   - every edge endpoint is present in nodeIndex.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrReference indicates an edge references a node key that is not in the graph.
	ErrReference = errors.New("core: edge endpoint references unknown node")

	// ErrConsistency indicates a projection produced an edge whose endpoints are
	// absent from the projected node set.
	ErrConsistency = errors.New("core: projection is inconsistent")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNilFunc indicates a required callback was nil.
	ErrNilFunc = errors.New("core: nil function")
)

// NodeEntry is a (key, attributes) pair used to insert, enumerate and replace nodes.
type NodeEntry[K comparable] struct {
	Key   K
	Attrs Attrs
}

// Edge is the (source, destination, label, attributes) tuple describing one edge.
// It is used both for insertion and for enumeration.
type Edge[K comparable] struct {
	Src   K
	Dst   K
	Label string
	Attrs Attrs
}

// IsLoop reports whether the edge starts and ends at the same node.
func (e Edge[K]) IsLoop() bool { return e.Src == e.Dst }

// EdgeKey identifies an edge by its triple.
type EdgeKey[K comparable] struct {
	Src   K
	Dst   K
	Label string
}

// Key returns the identifying triple of e.
func (e Edge[K]) Key() EdgeKey[K] { return EdgeKey[K]{Src: e.Src, Dst: e.Dst, Label: e.Label} }

// nodeRecord is the catalog slot of one node.
type nodeRecord[K comparable] struct {
	key   K
	attrs Attrs
}

// edgeRecord is the catalog slot of one edge.
type edgeRecord[K comparable] struct {
	key   EdgeKey[K]
	attrs Attrs
}

// Graph is an attributed directed multigraph keyed by K.
//
// The zero value is not usable; construct with New.
type Graph[K comparable] struct {
	mu sync.RWMutex // guards everything below

	nodes     []*nodeRecord[K] // insertion order
	nodeIndex map[K]int        // key -> position in nodes

	edges     []*edgeRecord[K]   // insertion order
	edgeIndex map[EdgeKey[K]]int // triple -> position in edges

	out map[K][]int // key -> positions of edges with Src == key
	in  map[K][]int // key -> positions of edges with Dst == key
}

// New returns an empty Graph.
// Complexity: O(1).
func New[K comparable]() *Graph[K] {
	return &Graph[K]{
		nodeIndex: make(map[K]int),
		edgeIndex: make(map[EdgeKey[K]]int),
		out:       make(map[K][]int),
		in:        make(map[K][]int),
	}
}

// GraphStats is a read-only summary of a graph's catalogs.
type GraphStats struct {
	Nodes     int // node count
	Edges     int // edge count
	SelfLoops int // edges with Src == Dst
	Dangling  int // nodes with no outgoing edges
	Isolated  int // nodes with no incident edges at all
}
