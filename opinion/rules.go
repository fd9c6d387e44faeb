package opinion

import "math"

// PeriodicRule treats the opinion space as a circle.
//
// With alt = (i-j) - Rho(i-j):
//
//	|alt| <  epsilon: i' = i + mu(j-i),                 j' = j + mu(i-j)
//	|alt| >= epsilon: i' = i - mu((j-i) - Rho(j-i)),    j' = j - mu·alt
//
// Discordant results are clamped to [0,1]; the wrapped repulsion can push a
// value past either end of the interval.
type PeriodicRule struct{}

// Update implements Rule.
func (PeriodicRule) Update(i, j, mu, epsilon float64) (float64, float64, error) {
	alt, err := WrappedDifference(i, j)
	if err != nil {
		return 0, 0, err
	}

	if math.Abs(alt) < epsilon {
		return attract(i, j, mu)
	}

	// j-i is exactly -(i-j) and Rho is odd, so this is -alt computed the
	// same way the swapped call would compute it.
	rev, err := WrappedDifference(j, i)
	if err != nil {
		return 0, 0, err
	}

	return clamp(i - mu*rev), clamp(j - mu*alt), nil
}

// NaiveRepulsionRule compares on the plain distance and repels linearly.
type NaiveRepulsionRule struct{}

// Update implements Rule.
func (NaiveRepulsionRule) Update(i, j, mu, epsilon float64) (float64, float64, error) {
	if err := checkPair(i, j); err != nil {
		return 0, 0, err
	}
	if Distance(i, j) < epsilon {
		return attract(i, j, mu)
	}

	return clamp(i - mu*(j-i)), clamp(j - mu*(i-j)), nil
}

// BoundedConfidenceRule attracts within epsilon and ignores everything else.
type BoundedConfidenceRule struct{}

// Update implements Rule.
func (BoundedConfidenceRule) Update(i, j, mu, epsilon float64) (float64, float64, error) {
	if err := checkPair(i, j); err != nil {
		return 0, 0, err
	}
	if Distance(i, j) < epsilon {
		return attract(i, j, mu)
	}

	return i, j, nil
}

// attract moves both opinions a fraction mu toward each other. The clamp only
// absorbs rounding at the interval ends.
func attract(i, j, mu float64) (float64, float64, error) {
	return clamp(i + mu*(j-i)), clamp(j + mu*(i-j)), nil
}

