// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Program interfaces (Messager, Collector), triplets, outboxes, directions, errors.

package pregel

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/lvgraph/core"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("pregel: graph is nil")

	// ErrNilProgram is returned when the messager or collector is nil.
	ErrNilProgram = errors.New("pregel: nil messager or collector")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pregel: invalid option supplied")
)

// Triplet is the view a Messager gets of one edge: both endpoints, the label,
// and the three attribute stores as they were before the superstep.
// The stores are read-only.
type Triplet[K comparable] struct {
	Src       K
	Dst       K
	Label     string
	SrcAttrs  core.Attrs
	DstAttrs  core.Attrs
	EdgeAttrs core.Attrs
}

// IsLoop reports whether the triplet is a self-loop.
func (t Triplet[K]) IsLoop() bool { return t.Src == t.Dst }

// Outbox receives the messages one edge emits during a superstep.
type Outbox[M any] struct {
	toSrc []M
	toDst []M
}

// ToSrc addresses m to the edge's source node.
func (o *Outbox[M]) ToSrc(m M) { o.toSrc = append(o.toSrc, m) }

// ToDst addresses m to the edge's destination node.
func (o *Outbox[M]) ToDst(m M) { o.toDst = append(o.toDst, m) }

// Messager produces messages for one edge. It must be safe to call from
// several goroutines at once and must not mutate the triplet's stores.
type Messager[K comparable, M any] interface {
	Messages(t Triplet[K], out *Outbox[M]) error
}

// MessagerFunc adapts a function to Messager.
type MessagerFunc[K comparable, M any] func(t Triplet[K], out *Outbox[M]) error

// Messages calls f.
func (f MessagerFunc[K, M]) Messages(t Triplet[K], out *Outbox[M]) error { return f(t, out) }

// Collector folds a node's inbox into its next attributes.
//
// attrs is a private copy the collector may modify and return. Returning a nil
// store leaves the node untouched (its current store is kept as-is).
// msgs is empty when the node is invoked only because of WithInvokeOnEmpty.
type Collector[K comparable, M any] interface {
	Collect(key K, attrs core.Attrs, msgs iter.Seq[M]) (core.Attrs, error)
}

// CollectorFunc adapts a function to Collector.
type CollectorFunc[K comparable, M any] func(key K, attrs core.Attrs, msgs iter.Seq[M]) (core.Attrs, error)

// Collect calls f.
func (f CollectorFunc[K, M]) Collect(key K, attrs core.Attrs, msgs iter.Seq[M]) (core.Attrs, error) {
	return f(key, attrs, msgs)
}

// Direction filters which addressed messages are delivered.
type Direction int

const (
	// Both delivers every message.
	Both Direction = iota
	// SrcToDst delivers only messages addressed to the destination.
	SrcToDst
	// DstToSrc delivers only messages addressed to the source.
	DstToSrc
)

// String returns the configuration spelling of d.
func (d Direction) String() string {
	switch d {
	case Both:
		return "both"
	case SrcToDst:
		return "src_to_dst"
	case DstToSrc:
		return "dst_to_src"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "both", "":
		return Both, nil
	case "src_to_dst":
		return SrcToDst, nil
	case "dst_to_src":
		return DstToSrc, nil
	default:
		return Both, fmt.Errorf("%w: unknown direction %q", ErrOptionViolation, s)
	}
}

func (d Direction) valid() bool { return d >= Both && d <= DstToSrc }

func (d Direction) deliversToSrc() bool { return d != SrcToDst }

func (d Direction) deliversToDst() bool { return d != DstToSrc }

// RoundResult summarizes one committed superstep.
type RoundResult struct {
	Messages   int // messages delivered after direction filtering
	Recipients int // collector invocations
	Updated    int // nodes whose store was replaced
}
