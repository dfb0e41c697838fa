// Package algorithms implements iterative graph algorithms on core.Graph using
// the pregel send/collect engine.
//
// It provides free-function implementations of:
//
//   - Ranking
//     – PageRank (reset probability, dangling-mass redistribution, threshold)
//
//   - Connectivity
//     – ConnectedComponents (minimum-label propagation, weak connectivity)
//     – ComponentOf (BFS reference for a single component)
//
//   - Degree statistics
//     – OutDegree, InDegree (one superstep each)
//
// Every algorithm runs on an attribute-free projection of the input graph, so
// the caller's attributes are neither read nor modified. WithResultKey writes
// the per-node result back into the caller's graph under a chosen key.
//
// Parameter errors wrap ErrInvalidParameter; a nil graph is ErrNilGraph.
// Non-convergence within the round bound is reported through the result's
// Converged field, never as an error.
package algorithms
