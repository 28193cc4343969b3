// Package improver implements the neighborhood-exploration strategies used by
// the solvers.
//
// Each strategy answers one question: given the current evaluated solution,
// is there a strictly better one nearby (LocalImprover) or, for tabu search,
// which permitted neighbor is best even if it is worse (TabuImprover)?
//
// Sequential strategies:
//
//	Minimizer            full scan, first minimum wins ties
//	TakeFirst            first strictly better neighbor
//	TakeFirstRecursion   TakeFirst that, on failure, rescans the neighborhoods
//	                     of the best W distinct candidates, up to D levels
//	TabuMinimizer        best permitted neighbor with its new tabu tokens
//
// Concurrent strategies (fork-join on golang.org/x/sync/errgroup):
//
//	ParallelMinimizer          workers reduce to per-worker minima; ties
//	                           resolve to the earliest neighbor, so the
//	                           result equals Minimizer's
//	TakeAnyParallelRecursion   one racing worker per frontier solution; the
//	                           first success cancels the others; universal
//	                           failure recurses on the merged candidate pool
//	ParallelTabuMinimizer      ParallelMinimizer over permitted neighbors
//
// Contracts:
//   - Improve never returns a value that is not strictly better than the
//     input (LocalImprover) and joins every goroutine it started before
//     returning.
//   - An empty neighborhood means "nothing found", never an error.
//   - A cancelled context ends the scan early with nothing found.
//
// Candidate pools are deduplicated by objective value before they are
// truncated to the configured width.
package improver
