// SPDX-License-Identifier: MIT
// Package: opinet/analysis
//
// distribution.go - statistics over the final opinion vector.

package analysis

import (
	"fmt"
	"math"
	"sort"
)

// DefaultBins is the histogram resolution used for opinion distributions.
const DefaultBins = 100

// Variance returns the population variance of xs (0 for empty input).
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)

	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}

	return ss / float64(len(xs))
}

// mean returns the arithmetic mean of xs, or 0 for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// Histogram counts opinions into bins equal-width bins over [0,1]. Every
// bin is half-open except the last, which also holds 1.
func Histogram(opinions []float64, bins int) ([]int, error) {
	if bins < 1 {
		return nil, fmt.Errorf("Histogram: bins=%d: %w", bins, ErrInvalidInput)
	}
	out := make([]int, bins)
	for i, x := range opinions {
		if math.IsNaN(x) || x < 0 || x > 1 {
			return nil, fmt.Errorf("Histogram: opinion[%d]=%v: %w", i, x, ErrInvalidInput)
		}
		b := int(x * float64(bins))
		if b == bins {
			b--
		}
		out[b]++
	}

	return out, nil
}

// AverageHistograms returns the bin-wise mean of equally sized histograms.
func AverageHistograms(hists [][]int) ([]float64, error) {
	if len(hists) == 0 {
		return nil, fmt.Errorf("AverageHistograms: no histograms: %w", ErrInvalidInput)
	}
	bins := len(hists[0])
	out := make([]float64, bins)
	for k, h := range hists {
		if len(h) != bins {
			return nil, fmt.Errorf("AverageHistograms: histogram %d has %d bins, want %d: %w",
				k, len(h), bins, ErrInvalidInput)
		}
		for i, c := range h {
			out[i] += float64(c)
		}
	}
	for i := range out {
		out[i] /= float64(len(hists))
	}

	return out, nil
}

// CountPeaks finds the local maxima of hist whose height is at least
// threshold and that are at least distance bins apart, returning their
// indices in ascending order.
//
// A peak is a sample strictly greater than both neighbours; a flat top
// counts once, at its middle (left-biased). The first and last samples
// are never peaks. When two peaks are closer than distance the taller one
// is kept (the leftmost on ties).
func CountPeaks(hist []float64, threshold float64, distance int) ([]int, error) {
	if distance < 1 {
		return nil, fmt.Errorf("CountPeaks: distance=%d: %w", distance, ErrInvalidInput)
	}

	// 1) Local maxima with plateau handling.
	var peaks []int
	n := len(hist)
	for i := 1; i < n-1; {
		if hist[i-1] < hist[i] {
			ahead := i + 1
			for ahead < n-1 && hist[ahead] == hist[i] {
				ahead++
			}
			if hist[ahead] < hist[i] {
				peaks = append(peaks, (i+ahead-1)/2)
			}
			i = ahead
			continue
		}
		i++
	}

	// 2) Height filter.
	kept := peaks[:0]
	for _, p := range peaks {
		if hist[p] >= threshold {
			kept = append(kept, p)
		}
	}
	peaks = kept
	if distance == 1 || len(peaks) < 2 {
		return peaks, nil
	}

	// 3) Distance filter, tallest first.
	order := make([]int, len(peaks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return hist[peaks[order[a]]] > hist[peaks[order[b]]]
	})
	keep := make([]bool, len(peaks))
	for i := range keep {
		keep[i] = true
	}
	for _, i := range order {
		if !keep[i] {
			continue
		}
		for j := i - 1; j >= 0 && peaks[i]-peaks[j] < distance; j-- {
			keep[j] = false
		}
		for j := i + 1; j < len(peaks) && peaks[j]-peaks[i] < distance; j++ {
			keep[j] = false
		}
	}

	out := make([]int, 0, len(peaks))
	for i, p := range peaks {
		if keep[i] {
			out = append(out, p)
		}
	}

	return out, nil
}
