package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opinet/analysis"
	"github.com/katalvlaran/opinet/core"
	"github.com/katalvlaran/opinet/simulation"
)

func graphOf(t *testing.T, opinions []float64, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, x := range opinions {
		_, err := g.AddNode(x)
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestVariance(t *testing.T) {
	assert.Equal(t, 0.0, analysis.Variance(nil))
	assert.Equal(t, 0.0, analysis.Variance([]float64{0.4, 0.4}))
	assert.InDelta(t, 0.25, analysis.Variance([]float64{0, 1}), 1e-12)
	assert.InDelta(t, 1.25, analysis.Variance([]float64{1, 2, 3, 4}), 1e-12)
}

func TestHistogram(t *testing.T) {
	h, err := analysis.Histogram([]float64{0, 0.1, 0.49, 0.5, 0.99, 1}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 1, 2}, h)

	h, err = analysis.Histogram(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, h)

	_, err = analysis.Histogram([]float64{0.5}, 0)
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
	_, err = analysis.Histogram([]float64{1.5}, 10)
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
	_, err = analysis.Histogram([]float64{math.NaN()}, 10)
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
}

func TestAverageHistograms(t *testing.T) {
	avg, err := analysis.AverageHistograms([][]int{{1, 2, 3}, {3, 2, 1}})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2}, avg)

	_, err = analysis.AverageHistograms(nil)
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
	_, err = analysis.AverageHistograms([][]int{{1}, {1, 2}})
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
}

func TestCountPeaks(t *testing.T) {
	cases := []struct {
		name      string
		hist      []float64
		threshold float64
		distance  int
		want      []int
	}{
		{"two clear peaks", []float64{0, 5, 0, 0, 7, 0}, 1, 1, []int{1, 4}},
		{"edges are not peaks", []float64{9, 1, 9}, 0, 1, nil},
		{"threshold filters", []float64{0, 2, 0, 8, 0}, 5, 1, []int{3}},
		{"plateau counted once", []float64{0, 4, 4, 4, 0}, 0, 1, []int{2}},
		{"even plateau left middle", []float64{0, 4, 4, 0}, 0, 1, []int{1}},
		{"plateau into edge", []float64{0, 4, 4}, 0, 1, nil},
		{"distance keeps taller", []float64{0, 3, 0, 6, 0, 2, 0}, 0, 3, []int{3}},
		{"distance far enough", []float64{0, 3, 0, 0, 6, 0}, 0, 3, []int{1, 4}},
		{"tie keeps leftmost", []float64{0, 5, 0, 5, 0}, 0, 3, []int{1}},
		{"empty", nil, 0, 1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := analysis.CountPeaks(tc.hist, tc.threshold, tc.distance)
			require.NoError(t, err)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := analysis.CountPeaks([]float64{0, 1, 0}, 0, 0)
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
}

func TestNeighborSimilarityAndIsolates(t *testing.T) {
	g := graphOf(t, []float64{0, 0.5, 1, 0.3}, [][2]int{{0, 1}, {1, 2}})

	assert.InDelta(t, 0.5, analysis.NeighborSimilarity(g), 1e-12)
	assert.Equal(t, 1, analysis.IsolatedCount(g))

	empty := graphOf(t, []float64{0.1, 0.2}, nil)
	assert.Equal(t, 0.0, analysis.NeighborSimilarity(empty))
	assert.Equal(t, 2, analysis.IsolatedCount(empty))
}

func TestCommunitiesAndModularity(t *testing.T) {
	// Two triangles and an isolate.
	g := graphOf(t, make([]float64, 7), [][2]int{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
	})

	comms, err := analysis.Communities(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, comms)

	q, err := analysis.Modularity(g, []int{0, 0, 0, 1, 1, 1, -1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, q, 1e-12)

	q, err = analysis.Modularity(g, []int{0, 0, 0, 0, 0, 0, -1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, q, 1e-12)

	_, err = analysis.Modularity(g, []int{0})
	assert.ErrorIs(t, err, analysis.ErrPartitionSize)

	q, err = analysis.Modularity(graphOf(t, []float64{0, 0}, nil), []int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, q)
}

func TestSummarize(t *testing.T) {
	res, err := simulation.Run(func() simulation.Config {
		cfg := simulation.DefaultConfig().WithSeed(42)
		cfg.Nodes, cfg.TimeSteps = 200, 10
		return cfg
	}())
	require.NoError(t, err)

	s, err := analysis.Summarize(res.Final)
	require.NoError(t, err)
	assert.Equal(t, 200, s.Nodes)
	assert.Equal(t, res.Final.EdgeCount(), s.Edges)
	assert.Len(t, s.Histogram, analysis.DefaultBins)
	sum := 0
	for _, c := range s.Histogram {
		sum += c
	}
	assert.Equal(t, 200, sum)
	assert.GreaterOrEqual(t, s.NeighborSimilarity, 0.0)
	assert.LessOrEqual(t, s.NeighborSimilarity, 1.0)
	assert.GreaterOrEqual(t, s.Modularity, -0.5)
	assert.LessOrEqual(t, s.Modularity, 1.0)
	assert.GreaterOrEqual(t, s.Communities, 1)

	init, err := analysis.Summarize(res.Initial, analysis.WithBins(10))
	require.NoError(t, err)
	assert.Len(t, init.Histogram, 10)
	assert.Equal(t, 0, init.Isolated)
	assert.Equal(t, 1, init.Communities, "generated network is connected")
	assert.InDelta(t, 0.0, init.Modularity, 1e-12)

	_, err = analysis.Summarize(res.Final, analysis.WithPeakDistance(0))
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
}

func TestMean(t *testing.T) {
	a, err := analysis.Mean([]analysis.Summary{
		{Isolated: 2, Sampled: 4, MeanOpinion: 0.5, Variance: 0.1, PeakThreshold: 1, PeakDistance: 1,
			Communities: 3, Modularity: 0.2, Histogram: []int{0, 1, 3, 0}},
		{Isolated: 4, Sampled: 4, MeanOpinion: 0.5, Variance: 0.3, PeakThreshold: 3, PeakDistance: 1,
			Communities: 5, Modularity: 0.4, Histogram: []int{0, 3, 1, 0}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, a.Runs)
	assert.InDelta(t, 3.0, a.Isolated, 1e-12)
	assert.InDelta(t, 0.2, a.Variance, 1e-12, "equal run means pool to the mean variance")
	assert.Equal(t, 1, a.Peaks, "peaks are recounted on the averaged histogram [0 2 2 0]")
	assert.InDelta(t, 4.0, a.Communities, 1e-12)
	assert.InDelta(t, 0.3, a.Modularity, 1e-12)
	assert.Equal(t, []float64{0, 2, 2, 0}, a.Histogram)

	_, err = analysis.Mean(nil)
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)

	_, err = analysis.Mean([]analysis.Summary{
		{PeakDistance: 1, Histogram: []int{0}},
		{PeakDistance: 2, Histogram: []int{0}},
	})
	assert.ErrorIs(t, err, analysis.ErrInvalidInput)
}

func TestMean_PoolsPolarizedRuns(t *testing.T) {
	uniform := func(x float64) []float64 {
		ops := make([]float64, 20)
		for i := range ops {
			ops[i] = x
		}
		return ops
	}
	low, err := analysis.Summarize(graphOf(t, uniform(0.2), nil))
	require.NoError(t, err)
	high, err := analysis.Summarize(graphOf(t, uniform(0.8), nil))
	require.NoError(t, err)
	require.Equal(t, 1, low.Peaks)
	require.Equal(t, 1, high.Peaks)
	require.InDelta(t, 0.0, low.Variance, 1e-12)

	a, err := analysis.Mean([]analysis.Summary{low, high})
	require.NoError(t, err)
	// 40 opinions, half at 0.2 and half at 0.8: mean 0.5, variance 0.3².
	assert.InDelta(t, 0.09, a.Variance, 1e-12)
	// The averaged histogram holds 10 at bin 20 and 10 at bin 80.
	assert.Equal(t, 2, a.Peaks)
	assert.InDelta(t, 10.0, a.Histogram[20], 1e-12)
	assert.InDelta(t, 10.0, a.Histogram[80], 1e-12)
}

func TestSummarize_ExcludeIsolates(t *testing.T) {
	// Nodes 0-1 are connected at 0.1 and 0.3; nodes 2 and 3 sit alone at 0.9.
	g := graphOf(t, []float64{0.1, 0.3, 0.9, 0.9}, [][2]int{{0, 1}})

	all, err := analysis.Summarize(g, analysis.WithBins(10))
	require.NoError(t, err)
	assert.Equal(t, 4, all.Sampled)
	assert.InDelta(t, 0.55, all.MeanOpinion, 1e-12)

	connected, err := analysis.Summarize(g, analysis.WithBins(10), analysis.WithExcludeIsolates(true))
	require.NoError(t, err)
	assert.Equal(t, 4, connected.Nodes)
	assert.Equal(t, 2, connected.Isolated)
	assert.Equal(t, 2, connected.Sampled)
	assert.InDelta(t, 0.2, connected.MeanOpinion, 1e-12)
	assert.InDelta(t, 0.01, connected.Variance, 1e-12)
	assert.Equal(t, []int{0, 1, 0, 1, 0, 0, 0, 0, 0, 0}, connected.Histogram)
	assert.InDelta(t, analysis.DefaultPeakShare*2, connected.PeakThreshold, 1e-12)
}
