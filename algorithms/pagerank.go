// SPDX-License-Identifier: MIT
//
// File: pagerank.go
// Role: PageRank with dangling-mass redistribution on the send/collect engine.

package algorithms

import (
	"context"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/pregel"
)

// PageRankResult holds the final ranks and how the iteration ended.
type PageRankResult[K comparable] struct {
	Ranks     map[K]float64
	Rounds    int
	Converged bool
}

// Sum returns the total rank mass (1 up to rounding on a non-empty graph).
func (r *PageRankResult[K]) Sum() float64 {
	s := 0.0
	for _, v := range r.Ranks {
		s += v
	}

	return s
}

// PageRank computes the PageRank of every node of g.
//
// Implementation:
//   - Stage 1: Validate parameters; take an attribute-free projection of g.
//   - Stage 2: One degree round writes out_degree; every edge gets
//     traffic_prop = 1/out_degree(src); every node starts at 1/N.
//   - Stage 3: Dangling nodes (out_degree 0) are found once with NewSubgraph.
//   - Stage 4: Iterate: before each round the dangling mass D is summed from the
//     committed ranks; each edge sends rank(src)*traffic_prop to dst; each node
//     becomes reset/N + (1-reset)*(incoming + D/N).
//   - Stage 5: Stop when the largest absolute rank change is below threshold,
//     or after maxIters rounds.
//
// Behavior highlights:
//   - Ranks sum to 1 after every round: dangling mass is spread evenly.
//   - Parallel edges and self-loops each carry their share of the source's rank.
//   - The caller's graph is not modified unless WithResultKey is given.
//   - An empty graph yields an empty, converged result.
//
// Errors:
//   - ErrNilGraph; ErrInvalidParameter if resetProb is outside [0,1] or NaN,
//     threshold is negative or NaN, maxIters < 1, or WithMaxIterations is
//     given (maxIters is the only round bound).
//   - ctx.Err() on cancellation.
//
// Complexity:
//   - Time O(R·(V+E)) for R rounds.
func PageRank[K comparable](ctx context.Context, g *core.Graph[K], resetProb, threshold float64, maxIters int, opts ...Option) (*PageRankResult[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	switch {
	case math.IsNaN(resetProb) || resetProb < 0 || resetProb > 1:
		return nil, fmt.Errorf("%w: reset probability %v outside [0,1]", ErrInvalidParameter, resetProb)
	case math.IsNaN(threshold) || threshold < 0:
		return nil, fmt.Errorf("%w: threshold %v must be >= 0", ErrInvalidParameter, threshold)
	case maxIters < 1:
		return nil, fmt.Errorf("%w: maxIters %d must be >= 1", ErrInvalidParameter, maxIters)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if o.MaxIterations != 0 {
		return nil, fmt.Errorf("%w: PageRank takes its round bound from maxIters, not WithMaxIterations", ErrInvalidParameter)
	}
	o.MaxIterations = maxIters

	work, err := workingCopy(g)
	if err != nil {
		return nil, err
	}
	n := work.NodeCount()
	if n == 0 {
		return &PageRankResult[K]{Ranks: map[K]float64{}, Converged: true}, nil
	}
	nf := float64(n)

	if err := degreeRound(ctx, work, true, AttrOutDegree, o); err != nil {
		return nil, err
	}
	f := work.Frame()
	if err := work.UpdateEdges(func(e core.Edge[K]) (core.Attrs, error) {
		// A node with an out-edge has out_degree >= 1.
		e.Attrs[AttrTrafficProp] = 1 / float64(core.GetOr(f.Attrs(e.Src), AttrOutDegree, 1))
		return e.Attrs, nil
	}); err != nil {
		return nil, err
	}
	if err := work.UpdateNodes(func(_ K, a core.Attrs) (core.Attrs, error) {
		a[AttrPageRank] = 1 / nf
		return a, nil
	}); err != nil {
		return nil, err
	}

	dangling := work.NewSubgraph(func(_ K, a core.Attrs) bool {
		return core.GetOr(a, AttrOutDegree, 0) == 0
	}, nil).Keys()

	send := pregel.MessagerFunc[K, float64](func(t pregel.Triplet[K], out *pregel.Outbox[float64]) error {
		out.ToDst(core.GetOr(t.SrcAttrs, AttrPageRank, 0.0) * core.GetOr(t.EdgeAttrs, AttrTrafficProp, 0.0))
		return nil
	})
	loop := pregel.Loop[K, float64, map[K]float64]{
		Init: readAttr(work, AttrPageRank, 0.0),
		Prepare: func(_ *core.Graph[K], prev map[K]float64) (pregel.Messager[K, float64], pregel.Collector[K, float64], error) {
			mass := 0.0
			for _, k := range dangling {
				mass += prev[k]
			}
			share := mass / nf
			collect := pregel.CollectorFunc[K, float64](func(_ K, a core.Attrs, msgs iter.Seq[float64]) (core.Attrs, error) {
				in := 0.0
				for m := range msgs {
					in += m
				}
				a[AttrPageRank] = resetProb/nf + (1-resetProb)*(in+share)
				return a, nil
			})
			return send, collect, nil
		},
		Converged: func(w *core.Graph[K], _ pregel.RoundResult, prev map[K]float64) (map[K]float64, bool, error) {
			cur := readAttr(w, AttrPageRank, 0.0)
			delta := 0.0
			for k, v := range cur {
				delta = math.Max(delta, math.Abs(v-prev[k]))
			}
			return cur, delta < threshold, nil
		},
	}

	out, err := pregel.Iterate(ctx, work, loop, o.engine(pregel.WithInvokeOnEmpty(true))...)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug().Int("rounds", out.Rounds).Bool("converged", out.Converged).Int("dangling", len(dangling)).Msg("pagerank finished")

	res := &PageRankResult[K]{Ranks: out.Carry, Rounds: out.Rounds, Converged: out.Converged}
	if o.ResultKey != "" {
		if err := writeBack(g, o.ResultKey, res.Ranks); err != nil {
			return nil, err
		}
	}

	return res, nil
}
