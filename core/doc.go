// Package core provides the in-memory attribute Graph that every other lvgraph
// package builds on.
//
// A Graph[K] stores:
//
//   - Nodes identified by a caller-chosen comparable key K, each owning an
//     attribute store (Attrs, a map from string keys to arbitrary values).
//   - Edges identified by the ordered triple (Src, Dst, Label). Parallel edges
//     with different labels are distinct; an identical triple collapses to one
//     edge whose attributes are merged on re-insertion.
//   - Out/in adjacency indices so per-node edge queries are O(deg).
//
// Mutation & query surface:
//
//	AddNodes / AddNode         insert or merge node attributes
//	AddEdges / AddEdge         insert or merge edges; unknown endpoint -> ErrReference
//	Nodes() / Edges()          lazy, restartable iter.Seq views in insertion order
//	UpdateNodes / UpdateEdges  replace every attribute store through a pure function
//	ReplaceNodes               atomic batch replacement (used by the pregel commit)
//	NewProjection / Project    transform keys, labels and attributes
//	NewSubgraph                node filter -> edge filter -> induced filter
//	Frame                      consistent read-only snapshot for supersteps
//
// Copy-on-write attribute stores:
//
//	An Attrs map is never mutated after it has been stored in a Graph. Every
//	write path (merge, update, replace) installs a fresh map. This is what makes
//	Frame snapshots stable across a superstep: a frame keeps the maps it saw even
//	while the commit installs new ones, and untouched nodes keep the very same
//	map (reference equality) across rounds.
//
// Concurrency:
//
//	All methods are safe for concurrent use; one sync.RWMutex guards the node
//	catalog, edge catalog and adjacency together so readers never observe a
//	half-applied batch. Callbacks (UpdateNodes, projections, predicates) run
//	without the lock held and may read the graph.
//
// Errors:
//
//	ErrReference    - edge insertion references a node that does not exist.
//	ErrConsistency  - a projection produced edges whose endpoints are not projected nodes.
//	ErrNodeNotFound - a query or replacement named a missing node.
//	ErrEdgeNotFound - a removal named a missing edge.
//	ErrNilFunc      - a required callback was nil.
package core
