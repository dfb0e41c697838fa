// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start key is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth, or a hook typed for another
// key type), it is recorded internally and surfaced as ErrOptionViolation
// when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
//
// Hooks are stored untyped because Option is shared by every key type;
// BFS[K] asserts them back to their K-typed form.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Undirected follows in-edges as well as out-edges.
	Undirected bool

	onEnqueue any // func(K, int)
	onVisit   any // func(K, int) error
	filter    any // func(curr, neighbor K) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - out-edges only
//   - no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a vertex is enqueued.
func WithOnEnqueue[K comparable](fn func(key K, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K comparable](fn func(key K, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithUndirected treats every edge as traversable in both directions.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// hooks is the K-typed form of the untyped callbacks in Options.
type hooks[K comparable] struct {
	onEnqueue func(K, int)
	onVisit   func(K, int) error
	filter    func(K, K) bool
}

// resolve asserts the stored callbacks to K. A mismatch is an option violation.
func resolve[K comparable](o Options) (hooks[K], error) {
	h := hooks[K]{
		onEnqueue: func(K, int) {},
		onVisit:   func(K, int) error { return nil },
		filter:    func(K, K) bool { return true },
	}
	var ok bool
	if o.onEnqueue != nil {
		if h.onEnqueue, ok = o.onEnqueue.(func(K, int)); !ok {
			return h, fmt.Errorf("%w: OnEnqueue hook has key type %T", ErrOptionViolation, o.onEnqueue)
		}
	}
	if o.onVisit != nil {
		if h.onVisit, ok = o.onVisit.(func(K, int) error); !ok {
			return h, fmt.Errorf("%w: OnVisit hook has key type %T", ErrOptionViolation, o.onVisit)
		}
	}
	if o.filter != nil {
		if h.filter, ok = o.filter.(func(K, K) bool); !ok {
			return h, fmt.Errorf("%w: neighbor filter has key type %T", ErrOptionViolation, o.filter)
		}
	}

	return h, nil
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from key to its distance (in edges) from the start.
//   - Parent: map from key to its predecessor in the BFS tree (start has none).
type Result[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// Reached reports whether key was discovered.
func (r *Result[K]) Reached(key K) bool {
	_, ok := r.Depth[key]
	return ok
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
