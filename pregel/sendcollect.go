// SPDX-License-Identifier: MIT
//
// File: sendcollect.go
// Role: One bulk-synchronous superstep over a core.Graph.
//
// Determinism:
//   - Every phase writes into pre-sized slots indexed by edge or node position,
//     so the committed state does not depend on the worker count or scheduling.
//   - Inboxes are filled in edge-insertion order; recipients are visited in
//     node-insertion order.

package pregel

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvgraph/core"
	"golang.org/x/sync/errgroup"
)

// SendCollect runs one superstep of m and c over g.
//
// Implementation:
//   - Stage 1: Check ctx and options; snapshot g with Frame.
//   - Stage 2: Message phase: call m for every edge in parallel chunks.
//   - Stage 3: Group delivered messages by recipient in edge order.
//   - Stage 4: Collect phase: call c for recipients (or every node with
//     InvokeOnEmpty) in parallel chunks, each on a private copy.
//   - Stage 5: Commit every non-nil result with one ReplaceNodes call.
//
// Behavior highlights:
//   - Every messager call sees pre-round state, self-loops included.
//   - Nodes not collected, and nodes whose collector returned nil, keep their
//     attribute store by reference.
//   - Topology is never modified.
//
// Errors:
//   - ErrNilGraph, ErrNilProgram, ErrOptionViolation (wrapped) for bad input.
//   - ctx.Err() if ctx is done before the round starts. A round that has
//     started runs to completion and commits even if ctx is cancelled.
//   - An error returned by m or c, verbatim (messages before collects).
//   - In every error case nothing is committed.
//
// Complexity:
//   - Time O(V+E) plus user callbacks; Space O(V+E+messages).
func SendCollect[K comparable, M any](ctx context.Context, g *core.Graph[K], m Messager[K, M], c Collector[K, M], opts ...Option) (RoundResult, error) {
	o, err := resolve(opts)
	if err != nil {
		return RoundResult{}, err
	}
	if err := validate(g, m, c); err != nil {
		return RoundResult{}, err
	}

	return superstep(ctx, g, m, c, o)
}

func validate[K comparable, M any](g *core.Graph[K], m Messager[K, M], c Collector[K, M]) error {
	if g == nil {
		return ErrNilGraph
	}
	if m == nil || c == nil {
		return ErrNilProgram
	}

	return nil
}

// superstep runs one round with already-resolved options.
// ctx is observed only on entry.
func superstep[K comparable, M any](ctx context.Context, g *core.Graph[K], m Messager[K, M], c Collector[K, M], o Options) (RoundResult, error) {
	if err := ctx.Err(); err != nil {
		return RoundResult{}, err
	}

	f := g.Frame()

	// The round is atomic with respect to cancellation.
	ctx = context.WithoutCancel(ctx)

	// Message phase.
	boxes := make([]Outbox[M], len(f.Edges))
	err := fanOut(ctx, o.Workers, len(f.Edges), func(i int) error {
		e := f.Edges[i]
		t := Triplet[K]{
			Src:       e.Src,
			Dst:       e.Dst,
			Label:     e.Label,
			SrcAttrs:  f.Attrs(e.Src),
			DstAttrs:  f.Attrs(e.Dst),
			EdgeAttrs: e.Attrs,
		}
		return m.Messages(t, &boxes[i])
	})
	if err != nil {
		return RoundResult{}, err
	}

	// Grouping.
	var res RoundResult
	inbox := make([][]M, len(f.Nodes))
	for i, e := range f.Edges {
		box := &boxes[i]
		if o.Direction.deliversToSrc() && len(box.toSrc) > 0 {
			si, _ := f.Index(e.Src)
			inbox[si] = append(inbox[si], box.toSrc...)
			res.Messages += len(box.toSrc)
		}
		if o.Direction.deliversToDst() && len(box.toDst) > 0 {
			di, _ := f.Index(e.Dst)
			inbox[di] = append(inbox[di], box.toDst...)
			res.Messages += len(box.toDst)
		}
		boxes[i] = Outbox[M]{}
	}

	recipients := make([]int, 0, len(f.Nodes))
	for i := range f.Nodes {
		if o.InvokeOnEmpty || len(inbox[i]) > 0 {
			recipients = append(recipients, i)
		}
	}
	res.Recipients = len(recipients)

	// Collect phase.
	results := make([]core.Attrs, len(recipients))
	err = fanOut(ctx, o.Workers, len(recipients), func(j int) error {
		n := f.Nodes[recipients[j]]
		next, err := c.Collect(n.Key, n.Attrs.Clone(), slices.Values(inbox[recipients[j]]))
		if err != nil {
			return err
		}
		results[j] = next
		return nil
	})
	if err != nil {
		return RoundResult{}, err
	}

	// Commit.
	updates := make([]core.NodeEntry[K], 0, len(recipients))
	for j, next := range results {
		if next == nil {
			continue
		}
		updates = append(updates, core.NodeEntry[K]{Key: f.Nodes[recipients[j]].Key, Attrs: next})
	}
	if err := g.ReplaceNodes(updates...); err != nil {
		return RoundResult{}, fmt.Errorf("pregel: commit: %w", err)
	}
	res.Updated = len(updates)

	return res, nil
}

// fanOut calls fn(0..n-1) across at most workers goroutines, in contiguous chunks.
// It returns the error of the lowest-indexed failing chunk; chunks stop early
// once any chunk has failed. Callers pass a context that is never cancelled
// from outside, so only a failing chunk stops the others.
func fanOut(ctx context.Context, workers, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	chunks := (n + chunk - 1) / chunk

	errs := make([]error, chunks)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for ci := 0; ci < chunks; ci++ {
		lo, hi := ci*chunk, min((ci+1)*chunk, n)
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				if err := fn(i); err != nil {
					errs[ci] = err
					return err
				}
			}
			return nil
		})
	}
	groupErr := eg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return groupErr
}
