// SPDX-License-Identifier: MIT
// Package: opinet/simulation
//
// types.go - run outputs and observation payloads.

package simulation

import "github.com/katalvlaran/opinet/core"

// Result is the outcome of one run. Final and Initial are independent
// graphs owned by the caller.
type Result struct {
	Final   *core.Graph
	Initial *core.Graph
	Seed    int64
	Stats   Stats
}

// Stats counts what happened during a run.
//
// Every interaction is either Concordant (updated plain distance within
// epsilon, edge kept) or Discordant (edge flagged for rewiring), and every
// discordant interaction ends in exactly one of Rewires or RewireExhausted.
type Stats struct {
	Rounds          int `json:"rounds"`
	Interactions    int `json:"interactions"`
	Concordant      int `json:"concordant"`
	Discordant      int `json:"discordant"`
	Rewires         int `json:"rewires"`
	RewireExhausted int `json:"rewire_exhausted"`
	SkippedIsolated int `json:"skipped_isolated"`
}

// RewireEvent describes one rewiring decision for node Node: the edge to
// Removed is replaced by an edge to Added. When Exhausted is set, no edge
// changed and Added is -1.
type RewireEvent struct {
	Round     int  `json:"round"`
	Node      int  `json:"node"`
	Removed   int  `json:"removed"`
	Added     int  `json:"added"`
	Exhausted bool `json:"exhausted"`
}
