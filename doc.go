// Package lvgraph is an in-memory toolkit for attributed directed graphs and
// vertex-centric analytics.
//
// Packages:
//
//	core/       generic Graph[K] with node and edge attribute stores, projection,
//	            subgraph views, frames and thread-safe mutation
//	pattern/    parser for the "(a)-[e]->(b); (b)-[]->(c)" clause language
//	query/      pattern matching over a graph as lazy binding sequences
//	pregel/     send/collect supersteps and the Iterate driver
//	algorithms/ PageRank, connected components, in/out degree
//	bfs/        breadth-first traversal with hooks and depth limits
//	builder/    deterministic fixture graphs (path, cycle, grid, random ...)
//	config/     HCL job files for engine and algorithm parameters
//
// Quick start:
//
//	g := core.New[string]()
//	_ = g.AddNode("a", core.Attrs{"name": "Alice"})
//	_ = g.AddNode("b", core.Attrs{"name": "Bob"})
//	_ = g.AddEdge("a", "b", "follows", nil)
//
//	res, _ := algorithms.PageRank(ctx, g, 0.15, 1e-6, 50)
//	seq, _ := query.FindString(g, `(x)-[*="follows"]->(y)`)
//	for b := range seq { ... }
//
// The library logs through zerolog when a logger is supplied and is silent
// otherwise.
package lvgraph
