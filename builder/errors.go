// SPDX-License-Identifier: MIT
// Package: lvgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices).
//   - Validation order when several checks fail: size, then probability,
//     then RNG presence, then construction.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, partition)
// is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1] (or NaN).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed, such as
// a nil constructor or a graph mutation rejected by core.
var ErrConstructFailed = errors.New("builder: construction failed")
