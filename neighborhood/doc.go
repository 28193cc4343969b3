// Package neighborhood defines how candidate solutions are enumerated around
// a given solution.
//
// A Neighborhood maps a solution to a finite, lazy iter.Seq of neighbors. A
// TabuNeighborhood additionally receives the current tabu tokens and yields
// only permitted neighbors, each paired with the tokens its move creates.
//
// Implementations must be safe for concurrent read-only use: parallel
// improvers call NeighborsOf from several goroutines and may stop consuming
// a sequence early (the yield function returns false).
//
// Rotated re-emits a deterministic neighborhood with its first r elements
// moved to the end, which lets callers avoid retrying the same early moves
// on every iteration.
//
// TabuList is the bounded FIFO used by tabu search to remember tokens.
package neighborhood
