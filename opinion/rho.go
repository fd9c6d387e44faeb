package opinion

import (
	"fmt"
	"math"
)

// Rho is the periodic-boundary correction for a signed opinion difference.
//
//	Rho(x) = -1  for x in [-1, -0.5)
//	Rho(x) =  0  for x in [-0.5, 0.5]
//	Rho(x) =  1  for x in (0.5, 1]
//
// Both ±0.5 fall in the middle band, which makes Rho odd: Rho(-x) == -Rho(x).
// Returns ErrOutOfRange for x outside [-1,1] or NaN.
func Rho(x float64) (float64, error) {
	switch {
	case x >= -1 && x < -0.5:
		return -1, nil
	case x >= -0.5 && x <= 0.5:
		return 0, nil
	case x > 0.5 && x <= 1:
		return 1, nil
	default:
		return 0, fmt.Errorf("Rho(%g): difference not in [-1,1]: %w", x, ErrOutOfRange)
	}
}

// WrappedDifference returns d - Rho(d) for d = i - j: the signed distance
// from j to i on the unit circle, in [-0.5, 0.5].
func WrappedDifference(i, j float64) (float64, error) {
	if err := checkPair(i, j); err != nil {
		return 0, err
	}
	d := i - j
	r, err := Rho(d)
	if err != nil {
		return 0, err
	}

	return d - r, nil
}

// WrappedDistance is |WrappedDifference(i, j)|.
func WrappedDistance(i, j float64) (float64, error) {
	alt, err := WrappedDifference(i, j)
	if err != nil {
		return 0, err
	}

	return math.Abs(alt), nil
}

// Distance is the plain |i - j| used by the rewiring check.
func Distance(i, j float64) float64 {
	return math.Abs(i - j)
}

// checkPair validates that both opinions lie in [0,1].
func checkPair(i, j float64) error {
	if !(i >= 0 && i <= 1) {
		return fmt.Errorf("opinion i=%g not in [0,1]: %w", i, ErrOutOfRange)
	}
	if !(j >= 0 && j <= 1) {
		return fmt.Errorf("opinion j=%g not in [0,1]: %w", j, ErrOutOfRange)
	}

	return nil
}

// clamp pins x to [0,1].
func clamp(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
