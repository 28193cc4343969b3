// Package solver drives improvement loops over a problem described by an
// objective.Objective and a neighborhood.
//
// Solvers:
//
//	LocalSearch           move to a strictly better neighbor until none exists
//	                      (NewParallelLocalSearch: ParallelMinimizer by default)
//	TabuSearch            always move to the best permitted neighbor, remember
//	                      the move in a bounded tabu list, return the best seen
//	                      (NewParallelTabuSearch: ParallelTabuMinimizer by default)
//	SimulatedAnnealing    accept the first neighbor whose acceptance
//	                      probability beats a uniform draw; cool on worse moves
//	ThresholdAccepting    accept the first neighbor below current + threshold;
//	                      shrink the threshold on worse moves
//
// Every solver is built once from an options struct, validated by its
// constructor, and may run Solve any number of times. Solve itself never
// fails: it returns the best evaluated solution it reached.
//
// Termination:
//
//	Limits.TimeLimit       checked after each iteration (elapsed > limit)
//	Limits.IterationLimit  checked after each iteration (iteration >= limit)
//	context cancellation   checked before each iteration and inside improvers
//
// Tabu search additionally stops after NoImprovementLimit iterations without a
// new best, and refuses to be built without any termination criterion.
//
// Observability: each Solve call gets a run id (uuid), an OpenTelemetry span,
// slog records tagged with component=solver, and Prometheus counters for
// runs, iterations and improve latency. An optional Observer receives every
// accepted step.
package solver
