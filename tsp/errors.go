package tsp

import "errors"

// ErrDimensionMismatch is returned for a non-square matrix or a tour that is
// not a permutation of the instance's nodes.
var ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

// ErrTooFewNodes is returned for instances with fewer than 3 nodes, which
// admit no 3-exchange move.
var ErrTooFewNodes = errors.New("tsp: instance needs at least 3 nodes")

// ErrIncompleteGraph is returned when a distance is NaN or infinite.
var ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

// ErrNegativeWeight is returned when a distance is negative.
var ErrNegativeWeight = errors.New("tsp: negative distance")
