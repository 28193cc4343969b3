// Package matrix: sentinel errors. Check them with errors.Is.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape has r<=0 or c<=0.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows indicates input rows of different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)
