// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Weakly connected components by minimum-label propagation, plus a BFS
//       reference used for single-component queries.

package algorithms

import (
	"cmp"
	"context"
	"iter"
	"slices"

	"github.com/katalvlaran/lvgraph/bfs"
	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/pregel"
)

// ComponentsResult maps every node to the smallest key of its component.
type ComponentsResult[K cmp.Ordered] struct {
	Labels    map[K]K
	Rounds    int
	Converged bool
}

// Count returns the number of distinct components.
func (r *ComponentsResult[K]) Count() int {
	seen := make(map[K]struct{}, len(r.Labels))
	for _, l := range r.Labels {
		seen[l] = struct{}{}
	}

	return len(seen)
}

// Groups returns the members of every component keyed by label; members are sorted.
func (r *ComponentsResult[K]) Groups() map[K][]K {
	out := make(map[K][]K)
	for k, l := range r.Labels {
		out[l] = append(out[l], k)
	}
	for _, members := range out {
		slices.Sort(members)
	}

	return out
}

// ConnectedComponents labels the weakly connected components of g.
//
// Implementation:
//   - Stage 1: Every node of an attribute-free projection starts with cc = own key.
//   - Stage 2: Each round, every edge whose endpoints disagree sends the smaller
//     label to the endpoint holding the larger one.
//   - Stage 3: A node keeps the minimum of its label and its messages; nodes
//     that do not change return nil and are left untouched.
//   - Stage 4: Stop after the first round that changes nothing.
//
// Behavior highlights:
//   - Edge direction is ignored; every component is labelled by its smallest key.
//   - Converges in at most diameter+1 rounds; the default bound is N+1.
//
// Errors:
//   - ErrNilGraph, ErrInvalidParameter (options), ctx.Err().
func ConnectedComponents[K cmp.Ordered](ctx context.Context, g *core.Graph[K], opts ...Option) (*ComponentsResult[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	work, err := workingCopy(g)
	if err != nil {
		return nil, err
	}
	n := work.NodeCount()
	if n == 0 {
		return &ComponentsResult[K]{Labels: map[K]K{}, Converged: true}, nil
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = n + 1
	}

	if err := work.UpdateNodes(func(k K, a core.Attrs) (core.Attrs, error) {
		a[AttrComponent] = k
		return a, nil
	}); err != nil {
		return nil, err
	}

	send := pregel.MessagerFunc[K, K](func(t pregel.Triplet[K], out *pregel.Outbox[K]) error {
		s := core.GetOr(t.SrcAttrs, AttrComponent, t.Src)
		d := core.GetOr(t.DstAttrs, AttrComponent, t.Dst)
		switch {
		case s < d:
			out.ToDst(s)
		case d < s:
			out.ToSrc(d)
		}
		return nil
	})
	keepMin := pregel.CollectorFunc[K, K](func(k K, a core.Attrs, msgs iter.Seq[K]) (core.Attrs, error) {
		cur := core.GetOr(a, AttrComponent, k)
		best := cur
		for m := range msgs {
			best = min(best, m)
		}
		if best == cur {
			return nil, nil
		}
		a[AttrComponent] = best
		return a, nil
	})
	loop := pregel.Loop[K, K, struct{}]{
		Prepare: func(*core.Graph[K], struct{}) (pregel.Messager[K, K], pregel.Collector[K, K], error) {
			return send, keepMin, nil
		},
	}

	out, err := pregel.Iterate(ctx, work, loop, o.engine()...)
	if err != nil {
		return nil, err
	}

	labels := make(map[K]K, n)
	for k, a := range work.Nodes() {
		labels[k] = core.GetOr(a, AttrComponent, k)
	}
	res := &ComponentsResult[K]{Labels: labels, Rounds: out.Rounds, Converged: out.Converged}
	o.Logger.Debug().Int("rounds", res.Rounds).Int("components", res.Count()).Msg("connected components finished")

	if o.ResultKey != "" {
		if err := writeBack(g, o.ResultKey, labels); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// ComponentOf returns the weakly connected component containing key, in BFS
// order from key. It walks the graph directly and serves as an independent
// check of ConnectedComponents.
func ComponentOf[K comparable](ctx context.Context, g *core.Graph[K], key K) ([]K, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	res, err := bfs.BFS(g, key, bfs.WithUndirected(), bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}
