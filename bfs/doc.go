// Package bfs provides a production-grade breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result[K] containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Works on any key type of core.Graph[K].
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//   - Independent reference for the message-passing connected components.
//
// Determinism
//
//	core.Graph reports adjacency in edge-insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Direction
//
//	BFS follows out-edges (Src→Dst). WithUndirected additionally follows
//	in-edges, which turns reachability into weak connectivity. Parallel edges
//	and self-loops never enqueue a vertex twice.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//		// Basic BFS with no options:
//		result, err := bfs.BFS(g, "start")
//		if err != nil {
//	      // handle one of:
//	      // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx errors, or hook errors
//		}
//
//		// With functional options:
//		result, err := bfs.BFS(
//		    g, "start",
//		    bfs.WithContext(ctx),
//		    bfs.WithMaxDepth(3),
//		    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//		    bfs.WithOnEnqueue(func(id string, depth int) { /* ... */ }),
//		    bfs.WithUndirected(),
//		    bfs.WithOnVisit(func(id string, depth int) error { /* ... */ return nil }),
//		)
//
// Options
//
//   - DefaultOptions(): background Context, no hooks, no depth limit, out-edges only.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a vertex is enqueued.
//   - WithUndirected():            follow in-edges too.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()               if the context is cancelled mid-search.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// Hooks are generic over the key type; a hook whose key type does not match
// the graph is reported as ErrOptionViolation.
package bfs
