// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

// queueItem pairs a key with its BFS depth.
type queueItem[K comparable] struct {
	key   K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph   *core.Graph[K]
	opts    Options
	hooks   hooks[K]
	ctx     context.Context
	queue   []queueItem[K]
	visited map[K]bool
	res     *Result[K]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error (wrapped).
func BFS[K comparable](g *core.Graph[K], start K, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	h, err := resolve[K](o)
	if err != nil {
		return nil, err
	}

	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[K]{
		graph:   g,
		opts:    o,
		hooks:   h,
		ctx:     o.Ctx,
		queue:   make([]queueItem[K], 0, n),
		visited: make(map[K]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks key visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker[K]) enqueue(key K, d int) {
	w.visited[key] = true
	w.res.Depth[key] = d
	w.hooks.onEnqueue(key, d)
	w.queue = append(w.queue, queueItem[K]{key: key, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.key)
		if err := w.hooks.onVisit(item.key, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.key, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in adjacency order (out-edges first, then in-edges when undirected).
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	out, err := w.graph.OutEdges(item.key)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.key, err)
	}
	for _, e := range out {
		w.offer(item.key, e.Dst, nextDepth)
	}

	if !w.opts.Undirected {
		return nil
	}
	in, err := w.graph.InEdges(item.key)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.key, err)
	}
	for _, e := range in {
		w.offer(item.key, e.Src, nextDepth)
	}

	return nil
}

func (w *walker[K]) offer(curr, nbr K, depth int) {
	if w.visited[nbr] || !w.hooks.filter(curr, nbr) {
		return
	}
	w.res.Parent[nbr] = curr
	w.enqueue(nbr, depth)
}
