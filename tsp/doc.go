// Package tsp is a Travelling Salesman plug-in for the lvsolve engine.
//
// It supplies everything a solver needs for a TSP instance given as a
// distance matrix ([][]float64, possibly asymmetric):
//
//   - Instance: a validated distance matrix.
//   - Tour: a permutation of all nodes with its cached total distance.
//     ThreeOptSwap produces a neighbor with an O(1) incremental distance update.
//   - Initial tours: NearestNeighborTour (deterministic) and RandomTour (seeded).
//   - Neighborhoods over every 3-exchange move (i<j<k):
//     ThreeOpt for local search, RotatedThreeOpt for annealing-type solvers
//     (it resumes after the last applied move), ThreeOptTabu for tabu search
//     (tokens are removed arcs).
//   - NewObjective / NewObjectiveWithInfo: a single Float level, "TotalDistance".
//   - Ready-made solvers wiring the above: LocalSearch, TakeFirstLocalSearch,
//     TakeAnyLocalSearch, TabuSearch, SimulatedAnnealing, ThresholdAccepting.
//
// A 3-exchange move (i, j, k) keeps nodes[0..i], then nodes[j+1..k], then
// nodes[i+1..j], then nodes[k+1..]. It removes arcs (i,i+1), (j,j+1), (k,k+1)
// and adds (i,j+1), (j,k+1), (k,i+1), indices modulo n. No segment is
// reversed, so the move is valid for asymmetric instances.
//
// Complexity: a neighborhood has C(n,3) moves; each costs O(n) to build.
package tsp
