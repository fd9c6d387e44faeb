// Package opinion declares the pairwise opinion update rules, the
// periodic-boundary correction rho, and the sentinel errors they return.
package opinion

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for update rules.
var (
	// ErrOutOfRange is returned when an opinion lies outside [0,1] or an
	// opinion difference lies outside [-1,1].
	ErrOutOfRange = errors.New("opinion: value out of range")

	// ErrUnknownRule is returned by ParseKind for an unrecognised rule name.
	ErrUnknownRule = errors.New("opinion: unknown rule")
)

// Rule computes the updated opinions of an interacting pair.
//
// Implementations are pure: the result depends only on the arguments.
// Both returned opinions lie in [0,1]. Swapping i and j swaps the results.
type Rule interface {
	Update(i, j, mu, epsilon float64) (float64, float64, error)
}

// Kind selects a Rule at configuration time.
type Kind int

const (
	// Periodic is the unified model on a circular opinion space: concordance
	// is judged on the wrapped distance and discordant pairs repel along it.
	Periodic Kind = iota

	// NaiveRepulsion judges concordance on the plain distance and repels
	// discordant pairs linearly.
	NaiveRepulsion

	// BoundedConfidence attracts concordant pairs and leaves discordant
	// pairs unchanged.
	BoundedConfidence
)

// kindNames maps every accepted spelling to its Kind.
var kindNames = map[string]Kind{
	"periodic":           Periodic,
	"rucm":               Periodic,
	"naive-repulsion":    NaiveRepulsion,
	"naive_repulsion":    NaiveRepulsion,
	"bounded-confidence": BoundedConfidence,
	"rbcm":               BoundedConfidence,
}

// String returns the canonical name of k.
func (k Kind) String() string {
	switch k {
	case Periodic:
		return "periodic"
	case NaiveRepulsion:
		return "naive-repulsion"
	case BoundedConfidence:
		return "bounded-confidence"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind resolves a rule name, case-insensitively. The empty string
// selects Periodic.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Periodic, nil
	}
	if k, ok := kindNames[s]; ok {
		return k, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownRule)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, err := k.Rule(); err != nil {
		return nil, err
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so a Kind can be read
// from YAML or JSON by name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// Rule returns the Rule implementation selected by k.
func (k Kind) Rule() (Rule, error) {
	switch k {
	case Periodic:
		return PeriodicRule{}, nil
	case NaiveRepulsion:
		return NaiveRepulsionRule{}, nil
	case BoundedConfidence:
		return BoundedConfidenceRule{}, nil
	default:
		return nil, fmt.Errorf("Rule(%s): %w", k, ErrUnknownRule)
	}
}
