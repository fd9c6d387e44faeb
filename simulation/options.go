// SPDX-License-Identifier: MIT
// Package: opinet/simulation
//
// options.go - functional options for Run and RunMany.
//
// Contract:
//   - Options configure observation only (logger, hooks, cancellation);
//     model parameters live in Config.
//   - Nil arguments leave the default in place.
//   - Hooks run synchronously on the simulation goroutine and must not
//     mutate the graph they are handed.

package simulation

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/opinet/core"
	"github.com/katalvlaran/opinet/internal/logging"
)

// Option customizes a run.
type Option func(*runOptions)

// RoundFunc observes the graph after each completed round (0-based).
type RoundFunc func(round int, g *core.Graph)

// RewireFunc observes each rewiring decision, including exhausted ones.
type RewireFunc func(ev RewireEvent)

type runOptions struct {
	ctx      context.Context
	logger   *slog.Logger
	onRound  RoundFunc
	onRewire RewireFunc
}

func newRunOptions(opts ...Option) runOptions {
	o := runOptions{
		ctx:      context.Background(),
		logger:   logging.Discard(),
		onRound:  func(int, *core.Graph) {},
		onRewire: func(RewireEvent) {},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger routes engine diagnostics to l: run start and finish at
// debug, rewire exhaustion at logging.LevelTrace.
func WithLogger(l *slog.Logger) Option {
	return func(o *runOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithContext lets a caller abandon a long run between rounds; the
// context error is returned wrapped.
func WithContext(ctx context.Context) Option {
	return func(o *runOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnRound registers a per-round observer.
func WithOnRound(fn RoundFunc) Option {
	return func(o *runOptions) {
		if fn != nil {
			o.onRound = fn
		}
	}
}

// WithOnRewire registers a rewiring observer.
func WithOnRewire(fn RewireFunc) Option {
	return func(o *runOptions) {
		if fn != nil {
			o.onRewire = fn
		}
	}
}
