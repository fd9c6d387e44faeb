// SPDX-License-Identifier: MIT
// Package: opinet/simulation
//
// rewire.go - rewiring policy.
//
// Target selection for node u (excludes u and every current neighbor of u):
//   - deg(u) >= N-1: no target exists → ErrRewireExhausted, edge kept.
//   - Otherwise up to MaxRewireAttempts uniform draws over all nodes.
//   - If every draw hit an excluded node, one uniform draw over the
//     enumerated valid candidates.
//
// Both stages are uniform over the same valid set, so the fallback does
// not bias the choice. Edge count is unchanged by every outcome.

package simulation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/opinet/internal/logging"
)

// rewire replaces edge (u,v) by (u,w) for a fresh target w.
func (e *engine) rewire(u, v int) error {
	ev := RewireEvent{Round: e.round, Node: u, Removed: v, Added: -1}

	w, err := e.pickTarget(u)
	if errors.Is(err, ErrRewireExhausted) {
		e.stats.RewireExhausted++
		ev.Exhausted = true
		e.opts.logger.Log(e.opts.ctx, logging.LevelTrace, "rewire skipped",
			slog.Int("round", e.round), slog.Int("node", u), slog.Int("neighbor", v))
		e.opts.onRewire(ev)
		return nil
	}
	if err != nil {
		return err
	}

	if err := e.g.RemoveEdge(u, v); err != nil {
		return fmt.Errorf("rewire %d: %w", u, err)
	}
	if err := e.g.AddEdge(u, w); err != nil {
		return fmt.Errorf("rewire %d: %w", u, err)
	}
	e.stats.Rewires++
	ev.Added = w
	e.opts.onRewire(ev)

	return nil
}

// pickTarget draws a node that is neither u nor adjacent to u.
func (e *engine) pickTarget(u int) (int, error) {
	n := e.g.NodeCount()
	d, err := e.g.Degree(u)
	if err != nil {
		return -1, err
	}
	if d >= n-1 {
		return -1, fmt.Errorf("node %d has degree %d of %d: %w", u, d, n-1, ErrRewireExhausted)
	}

	for a := 0; a < e.cfg.MaxRewireAttempts; a++ {
		w := e.rng.Intn(n)
		if w != u && !e.g.HasEdge(u, w) {
			return w, nil
		}
	}

	cands := e.candidates[:0]
	for w := 0; w < n; w++ {
		if w != u && !e.g.HasEdge(u, w) {
			cands = append(cands, w)
		}
	}
	e.candidates = cands

	return cands[e.rng.Intn(len(cands))], nil
}
