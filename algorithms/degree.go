// SPDX-License-Identifier: MIT
//
// File: degree.go
// Role: Out-degree and in-degree as single send/collect rounds.

package algorithms

import (
	"context"
	"iter"

	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/pregel"
)

// OutDegree returns the number of outgoing edges of every node.
// Each edge sends 1 to its source; every node (including those with no
// out-edges) is collected, so the map covers the whole node set.
func OutDegree[K comparable](ctx context.Context, g *core.Graph[K], opts ...Option) (map[K]int, error) {
	return degree(ctx, g, true, opts)
}

// InDegree returns the number of incoming edges of every node.
func InDegree[K comparable](ctx context.Context, g *core.Graph[K], opts ...Option) (map[K]int, error) {
	return degree(ctx, g, false, opts)
}

func degree[K comparable](ctx context.Context, g *core.Graph[K], out bool, opts []Option) (map[K]int, error) {
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

	key := AttrInDegree
	if out {
		key = AttrOutDegree
	}
	if err := degreeRound(ctx, work, out, key, o); err != nil {
		return nil, err
	}

	deg := readAttr(work, key, 0)
	o.Logger.Debug().Str("attr", key).Int("nodes", len(deg)).Msg("degree computed")
	if o.ResultKey != "" {
		if err := writeBack(g, o.ResultKey, deg); err != nil {
			return nil, err
		}
	}

	return deg, nil
}

// degreeRound writes the out- or in-degree of every node of g under key.
func degreeRound[K comparable](ctx context.Context, g *core.Graph[K], out bool, key string, o Options) error {
	m := pregel.MessagerFunc[K, int](func(_ pregel.Triplet[K], box *pregel.Outbox[int]) error {
		if out {
			box.ToSrc(1)
		} else {
			box.ToDst(1)
		}
		return nil
	})
	c := pregel.CollectorFunc[K, int](func(_ K, a core.Attrs, msgs iter.Seq[int]) (core.Attrs, error) {
		n := 0
		for v := range msgs {
			n += v
		}
		a[key] = n
		return a, nil
	})

	_, err := pregel.SendCollect(ctx, g, m, c, o.engine(pregel.WithInvokeOnEmpty(true))...)

	return err
}
