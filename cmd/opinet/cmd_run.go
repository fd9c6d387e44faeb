package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/opinet/analysis"
	"github.com/katalvlaran/opinet/internal/config"
	"github.com/katalvlaran/opinet/internal/logging"
	"github.com/katalvlaran/opinet/simulation"
)

// runReport is the JSON shape of `opinet run --json`.
type runReport struct {
	Config simulation.Config  `json:"config"`
	Runs   []runEntry         `json:"runs"`
	Mean   analysis.Aggregate `json:"mean"`
}

type runEntry struct {
	Seed    int64            `json:"seed"`
	Stats   simulation.Stats `json:"stats"`
	Initial analysis.Summary `json:"initial"`
	Final   analysis.Summary `json:"final"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation and report opinion and network measures",
		Long: `Run one or more simulations with identical parameters and report, per
run, the initial and final network measures (isolated nodes, neighbor
similarity, opinion variance, peaks, communities, modularity) followed by
their mean over all runs.

Parameters come from defaults, then the config file, then OPINET_*
environment variables, then the flags below.

Examples:
  opinet run --nodes 2000 --steps 100 --mu 0.25 --epsilon 0.2 --seed 42
  opinet run --rule bounded-confidence --runs 5 --json`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applyRunFlags(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
			events, err := logging.NewEventLogger(cfg.Logging.EventsFile)
			if err != nil {
				return fmt.Errorf("opening events file: %w", err)
			}
			defer func() {
				if cerr := events.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("events file is incomplete: %w", cerr)
				}
			}()

			jsonOut, _ := cmd.Flags().GetBool("json")
			report, err := runBatch(cmd, cfg, logger, events)
			if err != nil {
				return err
			}
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().Int("nodes", 0, "Number of agents")
	cmd.Flags().Int("steps", 0, "Number of rounds")
	cmd.Flags().Float64("mu", 0, "Convergence rate in [0,1]")
	cmd.Flags().Float64("epsilon", 0, "Tolerance in [0,1]")
	cmd.Flags().Int("attach", 0, "Barabási–Albert attachment count")
	cmd.Flags().Int64("seed", 0, "Random seed (default: derived from the clock)")
	cmd.Flags().String("rule", "", "Update rule: periodic, naive-repulsion, bounded-confidence")
	cmd.Flags().Int("runs", 0, "Number of repetitions")
	cmd.Flags().Int("max-rewire-attempts", 0, "Uniform retries before enumerating rewiring candidates")
	cmd.Flags().Bool("exclude-isolates", false, "Leave isolated agents out of the opinion histogram, peaks and variance")
	cmd.Flags().String("log-level", "", "Log level: info, debug, trace")
	cmd.Flags().String("events", "", "Write rewiring events to this JSONL file")

	return cmd
}

// applyRunFlags overrides cfg with every flag the user actually set.
func applyRunFlags(cmd *cobra.Command, cfg *config.OpinetConfig) error {
	f := cmd.Flags()
	s := &cfg.Simulation

	var err error
	set := func(name string, apply func() error) {
		if err == nil && f.Changed(name) {
			err = apply()
		}
	}
	set("nodes", func() (e error) { s.Nodes, e = f.GetInt("nodes"); return })
	set("steps", func() (e error) { s.TimeSteps, e = f.GetInt("steps"); return })
	set("mu", func() (e error) { s.Mu, e = f.GetFloat64("mu"); return })
	set("epsilon", func() (e error) { s.Epsilon, e = f.GetFloat64("epsilon"); return })
	set("attach", func() (e error) { s.Attach, e = f.GetInt("attach"); return })
	set("runs", func() (e error) { s.Runs, e = f.GetInt("runs"); return })
	set("max-rewire-attempts", func() (e error) { s.MaxRewireAttempts, e = f.GetInt("max-rewire-attempts"); return })
	set("rule", func() (e error) { s.Rule, e = f.GetString("rule"); return })
	set("seed", func() error {
		seed, e := f.GetInt64("seed")
		s.Seed = &seed
		return e
	})
	set("exclude-isolates", func() (e error) { cfg.Analysis.ExcludeIsolates, e = f.GetBool("exclude-isolates"); return })
	set("log-level", func() (e error) { cfg.Logging.Level, e = f.GetString("log-level"); return })
	set("events", func() (e error) { cfg.Logging.EventsFile, e = f.GetString("events"); return })

	return err
}

// runBatch executes the configured runs and summarizes each of them.
func runBatch(cmd *cobra.Command, cfg *config.OpinetConfig, logger *slog.Logger, events *logging.EventLogger) (*runReport, error) {
	simCfg, err := cfg.ToSimulation()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	logger.Info("starting runs",
		"runs", cfg.Simulation.Runs,
		"nodes", simCfg.Nodes,
		"time_steps", simCfg.TimeSteps,
		"mu", simCfg.Mu,
		"epsilon", simCfg.Epsilon,
		"rule", simCfg.Rule.String())

	results, err := simulation.RunMany(simCfg, cfg.Simulation.Runs,
		simulation.WithContext(cmd.Context()),
		simulation.WithLogger(logger),
		simulation.WithOnRewire(func(ev simulation.RewireEvent) { events.Log("rewire", ev) }),
	)
	if err != nil {
		return nil, err
	}

	opts := cfg.AnalysisOptions()
	report := &runReport{Config: simCfg, Runs: make([]runEntry, 0, len(results))}
	finals := make([]analysis.Summary, 0, len(results))
	for _, res := range results {
		initial, err := analysis.Summarize(res.Initial, opts...)
		if err != nil {
			return nil, err
		}
		final, err := analysis.Summarize(res.Final, opts...)
		if err != nil {
			return nil, err
		}
		report.Runs = append(report.Runs, runEntry{Seed: res.Seed, Stats: res.Stats, Initial: initial, Final: final})
		finals = append(finals, final)
	}
	if report.Mean, err = analysis.Mean(finals); err != nil {
		return nil, err
	}
	if len(results) > 0 {
		report.Config.Seed = &results[0].Seed
	}

	logger.Info("runs finished", "duration", time.Since(start).Round(time.Millisecond))

	return report, nil
}

// printReport renders a human-readable report.
func printReport(w io.Writer, r *runReport) {
	c := r.Config
	fmt.Fprintf(w, "rule=%s nodes=%d steps=%d mu=%g epsilon=%g attach=%d\n",
		c.Rule, c.Nodes, c.TimeSteps, c.Mu, c.Epsilon, c.Attach)
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintf(w, "%-6s %-20s %8s %8s %9s %6s %6s %9s\n",
		"run", "seed", "rewires", "isolated", "variance", "peaks", "comms", "modular.")
	for i, e := range r.Runs {
		fmt.Fprintf(w, "%-6d %-20d %8d %8d %9.4f %6d %6d %9.4f\n",
			i, e.Seed, e.Stats.Rewires, e.Final.Isolated, e.Final.Variance,
			e.Final.Peaks, e.Final.Communities, e.Final.Modularity)
	}
	fmt.Fprintln(w, strings.Repeat("-", 72))
	m := r.Mean
	fmt.Fprintf(w, "%-6s %-20s %8s %8.1f %9.4f %6d %6.1f %9.4f\n",
		"mean", "", "", m.Isolated, m.Variance, m.Peaks, m.Communities, m.Modularity)
	fmt.Fprintf(w, "neighbor similarity (mean): %.4f\n", m.NeighborSimilarity)
}
