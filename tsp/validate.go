// Package tsp - validation utilities.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n²) worst-case where n is the matrix size.
package tsp

import (
	"fmt"
	"math"
)

// validateDistMatrix checks shape and values of a distance matrix and
// returns its order n.
//
// Contract:
//   - square, n >= 3;
//   - every entry finite and non-negative (the diagonal is ignored).
//
// Complexity: O(n²) time, O(1) space.
func validateDistMatrix(dist [][]float64) (int, error) {
	n := len(dist)
	if n < 3 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewNodes, n)
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, fmt.Errorf("%w: row %d has %d entries, want %d", ErrDimensionMismatch, i, len(dist[i]), n)
		}
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			w = dist[i][j]
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return 0, fmt.Errorf("%w: d(%d,%d)=%v", ErrIncompleteGraph, i, j, w)
			}
			if w < 0 {
				return 0, fmt.Errorf("%w: d(%d,%d)=%v", ErrNegativeWeight, i, j, w)
			}
		}
	}
	return n, nil
}

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n || n <= 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// out of range or duplicate both break the bijection
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}
