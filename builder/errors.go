// SPDX-License-Identifier: MIT
// Package: opinet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, e.g.
//     fmt.Errorf("%s: m=%d >= n=%d: %w", methodBarabasiAlbert, m, n, ErrBadAttachment).
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, or the attachment
// count m) is smaller than the allowed minimum.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadAttachment indicates a preferential-attachment count m that is not
// strictly smaller than the number of nodes n.
var ErrBadAttachment = errors.New("builder: attachment count must be less than node count")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not complete without
// breaking graph invariants (nil constructor, core rejection, bad sampler output).
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// Priority when several validations fail:
//   • ErrTooFewVertices  - size/domain checks first (n, m).
//   • ErrBadAttachment   - then the n/m relation.
//   • ErrNeedRandSource  - then RNG presence.
//   • ErrConstructFailed - only for failures after validation.
