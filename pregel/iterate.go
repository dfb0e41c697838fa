// SPDX-License-Identifier: MIT
//
// File: iterate.go
// Role: Iterate supersteps until convergence, a round bound, or cancellation.

package pregel

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

// Loop describes an iterative computation with an explicit accumulator C
// threaded from one superstep to the next.
type Loop[K comparable, M any, C any] struct {
	// Init is the accumulator handed to the first Prepare call.
	Init C

	// Prepare returns the messager and collector for the next superstep.
	// It runs between supersteps, so it may read (and derive values from)
	// the committed graph, e.g. a global sum folded into the messager.
	Prepare func(g *core.Graph[K], carry C) (Messager[K, M], Collector[K, M], error)

	// Converged runs after each commit and returns the next accumulator.
	// A nil Converged stops once a round updates no node.
	Converged func(g *core.Graph[K], round RoundResult, carry C) (C, bool, error)
}

// Outcome reports how an Iterate call ended.
type Outcome[C any] struct {
	Rounds    int         // committed supersteps
	Converged bool        // Converged reported true
	Carry     C           // accumulator after the last committed round
	Last      RoundResult // result of the last committed round
}

// Iterate runs supersteps of loop over g.
//
// Implementation:
//   - Stage 1: Resolve options; validate graph and loop.
//   - Stage 2: For each round: check ctx, Prepare, run one superstep, Converged.
//   - Stage 3: Stop on convergence or after MaxIterations rounds.
//
// Behavior highlights:
//   - Superstep N+1 never starts before superstep N is committed.
//   - Reaching MaxIterations is not an error; Outcome.Converged is false.
//   - ctx is checked before each round. A round that is already running
//     when ctx is cancelled still commits; the loop stops at the next check
//     and returns the outcome so far with ctx.Err().
//
// Errors:
//   - ErrNilGraph, ErrNilProgram, ErrOptionViolation.
//   - Errors from Prepare, Converged, messagers and collectors, verbatim.
func Iterate[K comparable, M any, C any](ctx context.Context, g *core.Graph[K], loop Loop[K, M, C], opts ...Option) (Outcome[C], error) {
	out := Outcome[C]{Carry: loop.Init}

	o, err := resolve(opts)
	if err != nil {
		return out, err
	}
	if g == nil {
		return out, ErrNilGraph
	}
	if loop.Prepare == nil {
		return out, fmt.Errorf("%w: Loop.Prepare is required", ErrNilProgram)
	}
	converged := loop.Converged
	if converged == nil {
		converged = func(_ *core.Graph[K], r RoundResult, c C) (C, bool, error) { return c, r.Updated == 0, nil }
	}

	log := o.Logger
	for out.Rounds < o.MaxIterations {
		if err := ctx.Err(); err != nil {
			log.Warn().Int("rounds", out.Rounds).Err(err).Msg("iteration cancelled")
			return out, err
		}

		m, c, err := loop.Prepare(g, out.Carry)
		if err != nil {
			return out, err
		}
		if err := validate(g, m, c); err != nil {
			return out, err
		}

		res, err := superstep(ctx, g, m, c, o)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Warn().Int("rounds", out.Rounds).Err(err).Msg("iteration cancelled")
			}
			return out, err
		}
		out.Rounds++
		out.Last = res
		log.Debug().
			Int("superstep", out.Rounds).
			Int("messages", res.Messages).
			Int("recipients", res.Recipients).
			Int("updated", res.Updated).
			Msg("superstep committed")

		carry, done, err := converged(g, res, out.Carry)
		if err != nil {
			return out, err
		}
		out.Carry = carry
		if done {
			out.Converged = true
			break
		}
	}

	log.Debug().Int("rounds", out.Rounds).Bool("converged", out.Converged).Msg("iteration finished")

	return out, nil
}
