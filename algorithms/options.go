// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Sentinel errors, attribute keys and functional options shared by the algorithms.

package algorithms

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/pregel"
	"github.com/rs/zerolog"
)

// Sentinel errors.
var (
	// ErrInvalidParameter indicates an out-of-domain numeric parameter or option.
	ErrInvalidParameter = errors.New("algorithms: invalid parameter")

	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("algorithms: graph is nil")
)

// Attribute keys written on the working projection (and, with WithResultKey,
// the caller's graph uses the key given there instead).
const (
	AttrOutDegree   = "out_degree"
	AttrInDegree    = "in_degree"
	AttrPageRank    = "page_rank"
	AttrTrafficProp = "traffic_prop"
	AttrComponent   = "cc"
)

// Option configures an algorithm run.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	// Workers bounds the engine's per-phase goroutines; 0 keeps the engine default.
	Workers int

	// MaxIterations overrides the algorithm's own round bound; 0 keeps it.
	MaxIterations int

	// Logger receives progress from the engine and the algorithm.
	Logger zerolog.Logger

	// ResultKey, when non-empty, writes the per-node result into the caller's
	// graph under this attribute key.
	ResultKey string

	err error
}

func defaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithWorkers bounds the engine's per-phase goroutines (n >= 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (got %d)", ErrInvalidParameter, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxIterations overrides the round bound (n >= 1). PageRank rejects it
// in favour of its maxIters argument.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be >= 1 (got %d)", ErrInvalidParameter, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger installs a structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithResultKey writes results back into the caller's graph under key.
func WithResultKey(key string) Option {
	return func(o *Options) {
		if key == "" {
			o.err = fmt.Errorf("%w: empty result key", ErrInvalidParameter)
			return
		}
		o.ResultKey = key
	}
}

func resolve(opts []Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// engine translates o into pregel options, followed by extra.
func (o Options) engine(extra ...pregel.Option) []pregel.Option {
	out := []pregel.Option{pregel.WithLogger(o.Logger)}
	if o.Workers > 0 {
		out = append(out, pregel.WithWorkers(o.Workers))
	}
	if o.MaxIterations > 0 {
		out = append(out, pregel.WithMaxIterations(o.MaxIterations))
	}

	return append(out, extra...)
}

// workingCopy returns a projection of g with empty attribute stores, so the
// algorithm never touches or depends on the caller's attributes.
func workingCopy[K comparable](g *core.Graph[K]) (*core.Graph[K], error) {
	return g.NewProjection(
		func(k K, _ core.Attrs) (K, core.Attrs, error) { return k, core.Attrs{}, nil },
		func(e core.Edge[K]) (core.Edge[K], error) {
			e.Attrs = nil
			return e, nil
		},
	)
}

// writeBack stores values[k] under key on every node of g that has a value.
func writeBack[K comparable, V any](g *core.Graph[K], key string, values map[K]V) error {
	f := g.Frame()
	updates := make([]core.NodeEntry[K], 0, len(values))
	for _, n := range f.Nodes {
		v, ok := values[n.Key]
		if !ok {
			continue
		}
		updates = append(updates, core.NodeEntry[K]{Key: n.Key, Attrs: n.Attrs.With(key, v)})
	}

	return g.ReplaceNodes(updates...)
}

// readAttr collects attribute key of type V from every node of g.
func readAttr[K comparable, V any](g *core.Graph[K], key string, def V) map[K]V {
	out := make(map[K]V, g.NodeCount())
	for k, a := range g.Nodes() {
		out[k] = core.GetOr(a, key, def)
	}

	return out
}
