// Package lvsolve is a toolkit of local-search metaheuristics over any
// solution type.
//
// A problem plugs in two things:
//
//   - an objective (package objective): ranked levels of weighted indicators,
//     compared lexicographically, over Integer, Float and Duration scalars;
//   - a neighborhood (package neighborhood): the solutions one move away, as
//     an iterator, optionally filtered by a tabu list.
//
// The rest is generic:
//
//	improver/  one neighborhood exploration: Minimizer, TakeFirst,
//	           TakeFirstRecursion, ParallelMinimizer,
//	           TakeAnyParallelRecursion, TabuMinimizer, ParallelTabuMinimizer
//	solver/    the iterate loop: LocalSearch, TabuSearch,
//	           SimulatedAnnealing, ThresholdAccepting (+ parallel variants),
//	           with limits, observers, slog logging, OpenTelemetry spans and
//	           Prometheus metrics
//	config/    YAML/environment configuration and factories
//	tsp/       a Travelling Salesman plug-in with 3-exchange moves and
//	           ready-made solvers
//
// Concurrency is confined to a single improve call; a Solve call runs its
// iterations one after another.
package lvsolve
