// Package builder provides functional-options building blocks for the
// initial opinion network.
//
// The package offers:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): creates a core.Graph and applies
//     Constructor closures in order.
//     – NewOpinionNetwork(n, m, opts...): BarabasiAlbert + UniformOpinions.
//   - Constructors:
//     – BarabasiAlbert(n, m): scale-free preferential-attachment topology.
//     – UniformOpinions():    one i.i.d. opinion per node.
//   - Options:
//     – WithSeed(seed), WithRand(r): RNG selection (required).
//     – WithOpinionFn(fn):           custom opinion sampler.
//
// Guarantees:
//
//   - Determinism: a fixed seed and constructor order reproduce the same graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinels (ErrTooFewVertices,
//     ErrBadAttachment, ErrNeedRandSource, ErrConstructFailed); never panic.
//
// Example:
//
//	g, err := builder.NewOpinionNetwork(2000, 2, builder.WithSeed(42))
//	if err != nil { ... }
//	fmt.Println(g.NodeCount(), g.EdgeCount()) // 2000 3996
package builder
