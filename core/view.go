// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Projections (key/attribute transforms) and subgraphs (filters).
//
// Policy:
//   - Results are independent graphs; no attribute store is shared with the source.
//   - Callbacks run on a Frame snapshot without any lock held.
package core

import "fmt"

// NodeMapFunc maps one node to its projected key and attributes.
// attrs is a private copy the function may modify and return.
type NodeMapFunc[K, J comparable] func(key K, attrs Attrs) (J, Attrs, error)

// EdgeMapFunc maps one edge to its projected form. e.Attrs is a private copy.
type EdgeMapFunc[K, J comparable] func(e Edge[K]) (Edge[J], error)

// NodePredicate selects nodes for a subgraph. attrs is a private copy;
// writes to it reach neither the source nor the subgraph.
type NodePredicate[K comparable] func(key K, attrs Attrs) bool

// EdgePredicate selects edges for a subgraph. e.Attrs is a private copy.
type EdgePredicate[K comparable] func(e Edge[K]) bool

// NewProjection returns a new graph built by applying nodeFn to every node and
// edgeFn to every edge. A nil function is the identity.
//
// Behavior highlights:
//   - Projected nodes colliding on one key merge attributes in source order.
//   - Projected edges colliding on one triple merge attributes the same way.
//
// Errors:
//   - ErrConsistency if a projected edge names a key outside the projected node set;
//     no graph is returned in that case.
//   - Any error returned by nodeFn or edgeFn, verbatim.
func (g *Graph[K]) NewProjection(nodeFn NodeMapFunc[K, K], edgeFn EdgeMapFunc[K, K]) (*Graph[K], error) {
	if nodeFn == nil {
		nodeFn = func(k K, a Attrs) (K, Attrs, error) { return k, a, nil }
	}
	if edgeFn == nil {
		edgeFn = func(e Edge[K]) (Edge[K], error) { return e, nil }
	}

	return Project(g, nodeFn, edgeFn)
}

// Project is NewProjection for transforms that change the key type.
// Both functions are required.
//
// Implementation:
//   - Stage 1: Snapshot g with Frame.
//   - Stage 2: Project nodes into the result (merge on collision).
//   - Stage 3: Project edges and check both endpoints exist in the result.
//
// Errors:
//   - ErrNilFunc if either function is nil.
//   - ErrConsistency as described on NewProjection.
//
// Complexity:
//   - Time O(V+E) calls plus attribute copying.
func Project[K, J comparable](g *Graph[K], nodeFn NodeMapFunc[K, J], edgeFn EdgeMapFunc[K, J]) (*Graph[J], error) {
	if nodeFn == nil || edgeFn == nil {
		return nil, fmt.Errorf("Project: %w", ErrNilFunc)
	}

	f := g.Frame()
	out := New[J]()

	nodes := make([]NodeEntry[J], 0, len(f.Nodes))
	for _, n := range f.Nodes {
		key, attrs, err := nodeFn(n.Key, n.Attrs.Clone())
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, NodeEntry[J]{Key: key, Attrs: attrs})
	}
	// AddNodes never fails.
	_ = out.AddNodes(nodes...)

	edges := make([]Edge[J], 0, len(f.Edges))
	for _, e := range f.Edges {
		e.Attrs = e.Attrs.Clone()
		pe, err := edgeFn(e)
		if err != nil {
			return nil, err
		}
		edges = append(edges, pe)
	}
	if err := out.AddEdges(edges...); err != nil {
		return nil, fmt.Errorf("Project: %w: %w", ErrConsistency, err)
	}

	return out, nil
}

// Label is a display key: a printable name plus the original key.
type Label[K comparable] struct {
	Name string
	Data K
}

// LabelNode is a NodeMapFunc that rekeys a node by its Label.
// The attributes gain "name" and "data" entries mirroring the label.
func LabelNode[K comparable](key K, attrs Attrs) (Label[K], Attrs, error) {
	l := Label[K]{Name: fmt.Sprint(key), Data: key}
	if attrs == nil {
		attrs = Attrs{}
	}
	attrs["name"] = l.Name
	attrs["data"] = key

	return l, attrs, nil
}

// LabelEdge is the EdgeMapFunc matching LabelNode.
func LabelEdge[K comparable](e Edge[K]) (Edge[Label[K]], error) {
	return Edge[Label[K]]{
		Src:   Label[K]{Name: fmt.Sprint(e.Src), Data: e.Src},
		Dst:   Label[K]{Name: fmt.Sprint(e.Dst), Data: e.Dst},
		Label: e.Label,
		Attrs: e.Attrs,
	}, nil
}

// NewSubgraph returns the subgraph selected by nodePred and edgePred.
//
// Implementation:
//   - Stage 1: Keep nodes accepted by nodePred.
//   - Stage 2: For edges whose endpoints both survived, keep those accepted by edgePred.
//
// Behavior highlights:
//   - nil predicates accept everything, so NewSubgraph(nil, nil) is a copy of g.
//   - edgePred is never consulted for an edge with a dropped endpoint.
//   - Predicates get copies of the attribute stores; what they write is dropped.
//   - Attribute stores are cloned.
func (g *Graph[K]) NewSubgraph(nodePred NodePredicate[K], edgePred EdgePredicate[K]) *Graph[K] {
	f := g.Frame()
	out := New[K]()

	keep := make(map[K]struct{}, len(f.Nodes))
	nodes := make([]NodeEntry[K], 0, len(f.Nodes))
	for _, n := range f.Nodes {
		if nodePred != nil && !nodePred(n.Key, n.Attrs.Clone()) {
			continue
		}
		keep[n.Key] = struct{}{}
		nodes = append(nodes, n)
	}
	_ = out.AddNodes(nodes...)

	edges := make([]Edge[K], 0, len(f.Edges))
	for _, e := range f.Edges {
		if _, ok := keep[e.Src]; !ok {
			continue
		}
		if _, ok := keep[e.Dst]; !ok {
			continue
		}
		if edgePred != nil {
			arg := e
			arg.Attrs = e.Attrs.Clone()
			if !edgePred(arg) {
				continue
			}
		}
		edges = append(edges, e)
	}
	// Endpoints were checked against keep above.
	_ = out.AddEdges(edges...)

	return out
}

// InducedSubgraph returns the subgraph on keys plus every edge between them.
// Unknown keys are ignored.
func (g *Graph[K]) InducedSubgraph(keys ...K) *Graph[K] {
	want := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}

	return g.NewSubgraph(func(k K, _ Attrs) bool {
		_, ok := want[k]
		return ok
	}, nil)
}
