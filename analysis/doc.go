// Package analysis measures the networks produced by package simulation:
// isolated-node count, neighbor opinion similarity, opinion variance,
// opinion histograms and their peaks, the community partition given by
// connected components, and its modularity.
//
// All functions read the graph through its public snapshot accessors and
// never mutate it, so they are safe to call on Result.Final and
// Result.Initial concurrently.
package analysis
