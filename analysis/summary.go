// SPDX-License-Identifier: MIT
// Package: opinet/analysis
//
// summary.go - one-call summary of a network plus batch averaging.

package analysis

import (
	"fmt"

	"github.com/katalvlaran/opinet/bfs"
	"github.com/katalvlaran/opinet/core"
)

const (
	// DefaultPeakShare is the minimum peak height as a share of all nodes.
	DefaultPeakShare = 0.05
	// DefaultPeakDistance is the minimum spacing between peaks, in bins.
	DefaultPeakDistance = 10
)

// Summary gathers the measures reported for one final network.
//
// Sampled, MeanOpinion and Variance describe the opinions that fed the
// histogram (all nodes, or only connected ones with WithExcludeIsolates).
// PeakThreshold and PeakDistance record the peak settings used, so Mean
// can recount peaks on the averaged histogram.
type Summary struct {
	Nodes              int     `json:"nodes"`
	Edges              int     `json:"edges"`
	Isolated           int     `json:"isolated"`
	Sampled            int     `json:"sampled"`
	MeanOpinion        float64 `json:"mean_opinion"`
	Variance           float64 `json:"variance"`
	NeighborSimilarity float64 `json:"neighbor_similarity"`
	Peaks              int     `json:"peaks"`
	PeakThreshold      float64 `json:"peak_threshold"`
	PeakDistance       int     `json:"peak_distance"`
	Communities        int     `json:"communities"`
	Modularity         float64 `json:"modularity"`
	Histogram          []int   `json:"histogram"`
}

// Option tunes Summarize.
type Option func(*summaryConfig)

type summaryConfig struct {
	bins            int
	peakShare       float64
	distance        int
	excludeIsolates bool
}

// WithBins sets the histogram resolution (default DefaultBins).
func WithBins(n int) Option {
	return func(c *summaryConfig) { c.bins = n }
}

// WithPeakShare sets the minimum peak height as a share of the node count.
func WithPeakShare(share float64) Option {
	return func(c *summaryConfig) { c.peakShare = share }
}

// WithPeakDistance sets the minimum spacing between counted peaks.
func WithPeakDistance(d int) Option {
	return func(c *summaryConfig) { c.distance = d }
}

// WithExcludeIsolates drops isolated nodes from the opinion measures
// (histogram, peaks, mean and variance). Isolated still counts them.
func WithExcludeIsolates(exclude bool) Option {
	return func(c *summaryConfig) { c.excludeIsolates = exclude }
}

// Summarize computes every measure of g. Communities and Modularity use
// the connected components that contain an edge.
func Summarize(g *core.Graph, opts ...Option) (Summary, error) {
	cfg := summaryConfig{bins: DefaultBins, peakShare: DefaultPeakShare, distance: DefaultPeakDistance}
	for _, opt := range opts {
		opt(&cfg)
	}

	ops := g.Opinions()
	sampled := ops
	if cfg.excludeIsolates {
		sampled = g.WithoutIsolates().Opinions()
	}
	hist, err := Histogram(sampled, cfg.bins)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	fh := make([]float64, len(hist))
	for i, c := range hist {
		fh[i] = float64(c)
	}
	threshold := cfg.peakShare * float64(len(sampled))
	peaks, err := CountPeaks(fh, threshold, cfg.distance)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	comms, err := Communities(g)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	q, err := Modularity(g, bfs.Membership(comms, len(ops)))
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	return Summary{
		Nodes:              len(ops),
		Edges:              g.EdgeCount(),
		Isolated:           IsolatedCount(g),
		Sampled:            len(sampled),
		MeanOpinion:        mean(sampled),
		Variance:           Variance(sampled),
		NeighborSimilarity: NeighborSimilarity(g),
		Peaks:              len(peaks),
		PeakThreshold:      threshold,
		PeakDistance:       cfg.distance,
		Communities:        len(comms),
		Modularity:         q,
		Histogram:          hist,
	}, nil
}

// Aggregate is the batch view of several summaries, as reported for runs
// with identical parameters.
//
// Variance is taken over the pooled opinions of every run and Peaks is
// counted once on the averaged histogram; the remaining measures are
// plain means over runs.
type Aggregate struct {
	Runs               int       `json:"runs"`
	Isolated           float64   `json:"isolated"`
	Variance           float64   `json:"variance"`
	NeighborSimilarity float64   `json:"neighbor_similarity"`
	Peaks              int       `json:"peaks"`
	Communities        float64   `json:"communities"`
	Modularity         float64   `json:"modularity"`
	Histogram          []float64 `json:"histogram"`
}

// Mean aggregates summaries produced with the same analysis options.
// Histograms must share a size and PeakDistance must agree; the peak
// threshold is the mean of the recorded thresholds.
func Mean(summaries []Summary) (Aggregate, error) {
	if len(summaries) == 0 {
		return Aggregate{}, fmt.Errorf("Mean: no summaries: %w", ErrInvalidInput)
	}
	distance := summaries[0].PeakDistance
	hists := make([][]int, len(summaries))
	var (
		a         Aggregate
		threshold float64
		total     int
		weighted  float64
	)
	for i, s := range summaries {
		if s.PeakDistance != distance {
			return Aggregate{}, fmt.Errorf("Mean: summary %d has peak distance %d, want %d: %w",
				i, s.PeakDistance, distance, ErrInvalidInput)
		}
		a.Isolated += float64(s.Isolated)
		a.NeighborSimilarity += s.NeighborSimilarity
		a.Communities += float64(s.Communities)
		a.Modularity += s.Modularity
		threshold += s.PeakThreshold
		total += s.Sampled
		weighted += float64(s.Sampled) * s.MeanOpinion
		hists[i] = s.Histogram
	}
	avg, err := AverageHistograms(hists)
	if err != nil {
		return Aggregate{}, fmt.Errorf("Mean: %w", err)
	}

	k := float64(len(summaries))
	peaks, err := CountPeaks(avg, threshold/k, distance)
	if err != nil {
		return Aggregate{}, fmt.Errorf("Mean: %w", err)
	}

	// Pooled variance: within-run variance plus the spread of run means.
	if total > 0 {
		pooled := weighted / float64(total)
		var ss float64
		for _, s := range summaries {
			d := s.MeanOpinion - pooled
			ss += float64(s.Sampled) * (s.Variance + d*d)
		}
		a.Variance = ss / float64(total)
	}

	a.Runs = len(summaries)
	a.Isolated /= k
	a.NeighborSimilarity /= k
	a.Peaks = len(peaks)
	a.Communities /= k
	a.Modularity /= k
	a.Histogram = avg

	return a, nil
}
