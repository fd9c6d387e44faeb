// Package opinet simulates opinion dynamics on an evolving social network.
//
// 🚀 What is opinet?
//
//	Agents hold opinions in [0,1] and sit on a scale-free network. Each
//	round every agent talks to one random neighbor:
//		• Concordant pairs (close on the circular opinion space) converge
//		• Discordant pairs repel, and their tie is cut and rewired to a
//		  random stranger
//	Over many rounds this yields opinion clusters, echo chambers and
//	isolated agents, which the analysis layer measures.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        - Graph: integer node IDs, opinions, simple undirected edges
//	builder/     - Barabási–Albert generator + opinion assignment (functional options)
//	opinion/     - update rules (periodic, naive repulsion, bounded confidence)
//	simulation/  - the run loop, rewiring policy, hooks, statistics
//	bfs/         - breadth-first traversal and connected components
//	analysis/    - variance, histogram peaks, similarity, communities, modularity
//	cmd/opinet/  - command-line front end
//
// Quick example:
//
//	cfg := simulation.DefaultConfig().WithSeed(42)
//	res, _ := simulation.Run(cfg)
//	sum, _ := analysis.Summarize(res.Final)
//	fmt.Println(sum.Peaks, sum.Communities, sum.Isolated)
//
//	go install github.com/katalvlaran/opinet/cmd/opinet@latest
package opinet
