// Package pregel implements the send/collect message-passing primitive that
// the lvgraph algorithms are built on.
//
// A superstep (SendCollect) has three phases:
//
//  1. Message: a Messager is called once per edge with a Triplet (both
//     endpoints, label, and the three attribute stores as of the start of the
//     round) and addresses messages to either endpoint through an Outbox.
//  2. Collect: a Collector is called once per recipient with its attributes
//     and the sequence of messages it received, and returns its next store.
//  3. Commit: all returned stores are installed atomically, after every
//     collector has returned.
//
// Both phases fan out over golang.org/x/sync/errgroup with a bounded number of
// workers. Results land in slots indexed by edge or node position, so output is
// identical for any worker count.
//
// Iterate repeats supersteps until a Loop's Converged function says stop, the
// MaxIterations bound is reached, or the context is cancelled. A Loop threads an
// explicit accumulator between rounds; Prepare can derive per-round constants
// (such as a global dangling mass) from the committed graph.
//
// Options:
//
//	WithInvokeOnEmpty(bool)   collect every node, not only recipients
//	WithDirection(d)          Both | SrcToDst | DstToSrc delivery filter
//	WithWorkers(n)            goroutine bound per phase (default GOMAXPROCS)
//	WithMaxIterations(n)      Iterate bound (default 100)
//	WithLogger(zerolog)       superstep progress at debug, cancellation at warn
//
// Concurrency: the graph must not be mutated by anyone else while a
// computation runs. Messagers and collectors are called concurrently and must
// not mutate the stores they are shown, except the collector's own private copy.
package pregel
