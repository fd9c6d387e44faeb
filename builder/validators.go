// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
//
// Each function returns an error wrapping a sentinel when its precondition
// is violated.
package builder

import "fmt"

// validateMin ensures that got >= min, wrapping ErrTooFewVertices otherwise.
//
// Parameters:
//   - method: constructor name constant, e.g. methodBarabasiAlbert.
//   - name:   parameter name for the message ("n", "m").
//   - got:    actual value supplied by user.
//   - min:    minimal acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateAttachment ensures m < n, wrapping ErrBadAttachment otherwise.
// Complexity: O(1) time and space.
func validateAttachment(method string, n, m int) error {
	if m >= n {
		return fmt.Errorf("%s: m=%d >= n=%d: %w", method, m, n, ErrBadAttachment)
	}

	return nil
}

// validateRand ensures a stochastic constructor has an RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
