// Package simulation runs the opinion-dynamics model on a rewiring
// scale-free network.
//
// A run generates a Barabási–Albert network with uniform opinions
// (package builder), keeps an independent copy as the initial snapshot,
// then performs Config.TimeSteps rounds. In each round every node, in a
// fresh random order, interacts with one random neighbor through the
// configured opinion.Rule; if the updated opinions are further apart than
// epsilon (plain distance), the edge is cut and the node reconnects to a
// random node it is not yet adjacent to.
//
// Guarantees:
//
//   - Opinions stay in [0,1]; the graph stays simple.
//   - Edge count never changes after generation.
//   - Same Config (including Seed) ⇒ identical final graph.
//   - TimeSteps == 0 ⇒ Final equals Initial, as separate objects.
//   - Invalid parameters fail with ErrInvalidParameter before any work.
//   - A node adjacent to everyone cannot rewire; the interaction keeps its
//     edge and is counted in Stats.RewireExhausted.
//
// Runs share nothing mutable, so callers may execute independent runs on
// separate goroutines. RunMany is the sequential batch form.
//
// Example:
//
//	cfg := simulation.DefaultConfig().WithSeed(42)
//	cfg.Nodes, cfg.Epsilon = 500, 0.2
//	res, err := simulation.Run(cfg, simulation.WithLogger(logger))
//	if err != nil { ... }
//	fmt.Println(res.Final.Isolates(), res.Stats.Rewires)
package simulation
