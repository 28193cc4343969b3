// Package matrix provides Dense, a row-major float64 matrix used as the
// storage of distance tables.
//
// Indexers At and Set bounds-check and return ErrOutOfRange; Get is the
// unchecked accessor for hot loops and panics like a slice would.
package matrix
