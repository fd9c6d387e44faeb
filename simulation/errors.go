// SPDX-License-Identifier: MIT
// Package: opinet/simulation
//
// errors.go - sentinel errors for the simulation package.
//
// Error policy:
//   - Parameter problems surface as ErrInvalidParameter before any graph
//     is generated or mutated.
//   - ErrRewireExhausted never escapes Run; it is recovered per interaction
//     and counted in Stats.RewireExhausted.
//   - Update-rule failures mid-run indicate a broken invariant and abort
//     the run with the wrapped opinion.ErrOutOfRange.

package simulation

import "errors"

// ErrInvalidParameter indicates a configuration value outside its domain
// (Nodes, TimeSteps, Mu, Epsilon, Attach, Rule, MaxRewireAttempts, runs).
var ErrInvalidParameter = errors.New("simulation: invalid parameter")

// ErrRewireExhausted indicates that a node is already adjacent to every
// other node, so no rewiring target exists.
var ErrRewireExhausted = errors.New("simulation: no rewiring target available")
