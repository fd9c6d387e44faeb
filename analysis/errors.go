// SPDX-License-Identifier: MIT
// Package: opinet/analysis
//
// errors.go - sentinel errors for the analysis package.

package analysis

import "errors"

var (
	// ErrInvalidInput indicates an argument outside its domain
	// (bins < 1, distance < 1, opinion outside [0,1], empty input).
	ErrInvalidInput = errors.New("analysis: invalid input")

	// ErrPartitionSize indicates a membership slice whose length differs
	// from the graph's node count.
	ErrPartitionSize = errors.New("analysis: partition does not match graph")
)
