// Package builder assembles deterministic string-keyed graphs for tests,
// examples and benchmarks of the analytics packages.
//
// A build is a list of Constructors applied in order to a fresh
// core.Graph[string]:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithSymmetric()},
//		builder.Cycle(5),
//		builder.Offset(5, builder.Complete(4)),
//	)
//
// Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
// RandomSparse and Isolated; Offset shifts the ID range of another constructor
// so copies can sit side by side.
//
// Options:
//   - Vertex IDs: WithIDScheme, WithSymbolIDs, WithExcelColumnIDs, WithPrefixIDs.
//   - Randomness: WithSeed, WithRand (required by RandomSparse for 0<p<1).
//   - Edges: WithLabel, WithEdgeAttrs, WithWeightFn (writes AttrWeight),
//     WithSymmetric.
//   - Vertices: WithNodeAttrs.
//
// Option constructors panic on meaningless input (nil functions, negative
// weight parameters). Constructors never panic; they return ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource or ErrConstructFailed wrapped with
// the constructor name.
package builder
