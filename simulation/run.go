// SPDX-License-Identifier: MIT
// Package: opinet/simulation
//
// run.go - the simulation loop.
//
// Per round:
//   - Draw a fresh permutation of all node IDs.
//   - For each u in that order: skip isolates; pick a uniform neighbor v;
//     apply the rule and write both opinions back; if the updated plain
//     distance exceeds epsilon, rewire (u,v) → (u,w).
//
// Later picks in a round observe mutations made earlier in the same round.
// One *rand.Rand drives generation and dynamics, so Seed + Config
// reproduce the final graph bit for bit.

package simulation

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/opinet/builder"
	"github.com/katalvlaran/opinet/core"
	"github.com/katalvlaran/opinet/opinion"
)

// engine owns the graph and random source for the duration of one run.
type engine struct {
	cfg   Config
	rule  opinion.Rule
	rng   *rand.Rand
	g     *core.Graph
	opts  runOptions
	stats Stats
	round int

	// scratch buffer for the rewiring fallback
	candidates []int
}

func newEngine(cfg Config, rule opinion.Rule, rng *rand.Rand, g *core.Graph, opts runOptions) *engine {
	return &engine{cfg: cfg, rule: rule, rng: rng, g: g, opts: opts}
}

// Run validates cfg, generates the initial network, advances it through
// cfg.TimeSteps rounds and returns the final graph with an independent
// copy of the initial one.
//
// Errors:
//   - ErrInvalidParameter for any Config violation (nothing is generated).
//   - The wrapped context error if WithContext is cancelled between rounds.
//   - A wrapped opinion.ErrOutOfRange if an update ever sees an opinion
//     outside [0,1] (broken invariant).
func Run(cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, err := cfg.Rule.Rule()
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodRun, err, ErrInvalidParameter)
	}
	o := newRunOptions(opts...)

	seed := resolveSeed(cfg.Seed)
	rng := rand.New(rand.NewSource(seed))
	g, err := builder.NewOpinionNetwork(cfg.Nodes, cfg.Attach, builder.WithRand(rng))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}
	initial := g.Clone()

	log := o.logger.With(slog.Int64("seed", seed), slog.String("rule", cfg.Rule.String()))
	log.Debug("simulation started",
		slog.Int("nodes", cfg.Nodes),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("time_steps", cfg.TimeSteps),
		slog.Float64("mu", cfg.Mu),
		slog.Float64("epsilon", cfg.Epsilon))

	e := newEngine(cfg, rule, rng, g, o)
	e.opts.logger = log
	for e.round = 0; e.round < cfg.TimeSteps; e.round++ {
		if err := o.ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", methodRun, e.round, err)
		}
		if err := e.step(); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", methodRun, e.round, err)
		}
		e.stats.Rounds++
		o.onRound(e.round, g)
	}

	log.Debug("simulation finished",
		slog.Int("edges", g.EdgeCount()),
		slog.Int("interactions", e.stats.Interactions),
		slog.Int("rewires", e.stats.Rewires),
		slog.Int("rewire_exhausted", e.stats.RewireExhausted))

	return &Result{Final: g, Initial: initial, Seed: seed, Stats: e.stats}, nil
}

// RunSimulation is the positional form of Run: n nodes, t rounds,
// convergence mu, tolerance eps, attachment m and an optional seed, with
// the periodic rule. It returns (final, initial).
func RunSimulation(n, t int, mu, eps float64, m int, seed *int64) (*core.Graph, *core.Graph, error) {
	cfg := DefaultConfig()
	cfg.Nodes, cfg.TimeSteps, cfg.Mu, cfg.Epsilon, cfg.Attach, cfg.Seed = n, t, mu, eps, m, seed

	res, err := Run(cfg)
	if err != nil {
		return nil, nil, err
	}

	return res.Final, res.Initial, nil
}

// RunMany performs runs sequential runs of cfg. Run k uses seed base+k,
// where base is cfg.Seed or a clock-derived seed when cfg.Seed is nil, so
// a fixed seed reproduces the whole batch. The first failing run aborts
// the batch.
func RunMany(cfg Config, runs int, opts ...Option) ([]*Result, error) {
	if runs < 1 {
		return nil, fmt.Errorf("%s: runs=%d must be >= 1: %w", methodRunMany, runs, ErrInvalidParameter)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := resolveSeed(cfg.Seed)
	out := make([]*Result, 0, runs)
	for k := 0; k < runs; k++ {
		res, err := Run(cfg.WithSeed(base+int64(k)), opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: run %d: %w", methodRunMany, k, err)
		}
		out = append(out, res)
	}

	return out, nil
}

// step performs one round.
func (e *engine) step() error {
	for _, u := range e.rng.Perm(e.g.NodeCount()) {
		if err := e.interact(u); err != nil {
			return err
		}
	}

	return nil
}

// interact lets u talk to one random neighbor and rewires if they end up
// too far apart.
func (e *engine) interact(u int) error {
	d, err := e.g.Degree(u)
	if err != nil {
		return err
	}
	if d == 0 {
		e.stats.SkippedIsolated++
		return nil
	}
	v, err := e.g.NeighborAt(u, e.rng.Intn(d))
	if err != nil {
		return err
	}

	ou, err := e.g.Opinion(u)
	if err != nil {
		return err
	}
	ov, err := e.g.Opinion(v)
	if err != nil {
		return err
	}
	nu, nv, err := e.rule.Update(ou, ov, e.cfg.Mu, e.cfg.Epsilon)
	if err != nil {
		return fmt.Errorf("interaction %d-%d: %w", u, v, err)
	}
	if err := e.g.SetOpinion(u, nu); err != nil {
		return err
	}
	if err := e.g.SetOpinion(v, nv); err != nil {
		return err
	}
	e.stats.Interactions++

	if opinion.Distance(nu, nv) <= e.cfg.Epsilon {
		e.stats.Concordant++
		return nil
	}
	e.stats.Discordant++

	return e.rewire(u, v)
}

// resolveSeed returns *seed, or a clock-derived seed when seed is nil.
func resolveSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}
