// Package tsp - ready-made solvers.
//
// Every builder takes solver.Options for the observer, logger, tracer and
// limits. Parameters that are specific to a heuristic are fixed here and
// documented per builder.
package tsp

import (
	"time"

	"github.com/katalvlaran/lvsolve/improver"
	"github.com/katalvlaran/lvsolve/objective"
	"github.com/katalvlaran/lvsolve/solver"
)

// Fixed heuristic parameters of the ready-made solvers.
const (
	TakeFirstDepth         = 2
	TakeFirstWidth         = 5
	TakeFirstTimeLimit     = 10 * time.Minute
	TabuListSize           = 30
	TabuNoImprovementLimit = 100
	AnnealingCoolingFactor = 0.9
	AnnealingSeed          = 13
	ThresholdFactor        = 0.9
)

// LocalSearch is a best-improvement 3-opt local search.
func LocalSearch(base solver.Options[Tour]) (*solver.LocalSearch[Tour], error) {
	return solver.NewLocalSearch(ThreeOpt(), NewObjective(), solver.LocalSearchOptions[Tour]{Options: base})
}

// ParallelLocalSearch is LocalSearch with the neighborhood scanned concurrently.
func ParallelLocalSearch(base solver.Options[Tour], opts ...improver.Option) (*solver.LocalSearch[Tour], error) {
	nb, obj := ThreeOpt(), NewObjective()
	return solver.NewParallelLocalSearch(nb, obj, solver.LocalSearchOptions[Tour]{
		Options:  base,
		Improver: improver.NewParallelMinimizer(nb, obj, append(base.ImproverOptions(), opts...)...),
	})
}

// TakeFirstLocalSearch takes the first improving 3-opt move, backtracking
// TakeFirstDepth levels over the best TakeFirstWidth candidates when stuck.
// TakeFirstTimeLimit applies unless base sets a time limit.
func TakeFirstLocalSearch(base solver.Options[Tour]) (*solver.LocalSearch[Tour], error) {
	nb, obj := ThreeOpt(), NewObjective()
	if base.Limits.TimeLimit == 0 {
		base.Limits.TimeLimit = TakeFirstTimeLimit
	}
	return solver.NewLocalSearch(nb, obj, solver.LocalSearchOptions[Tour]{
		Options:  base,
		Improver: improver.NewTakeFirstRecursion(TakeFirstDepth, TakeFirstWidth, nb, obj, base.ImproverOptions()...),
	})
}

// TakeAnyLocalSearch races concurrent workers for any improving 3-opt move,
// without backtracking.
func TakeAnyLocalSearch(base solver.Options[Tour], opts ...improver.Option) (*solver.LocalSearch[Tour], error) {
	nb, obj := ThreeOpt(), NewObjective()
	return solver.NewLocalSearch(nb, obj, solver.LocalSearchOptions[Tour]{
		Options:  base,
		Improver: improver.NewTakeAnyParallelRecursion(0, 0, nb, obj, append(base.ImproverOptions(), opts...)...),
	})
}

// TabuSearch remembers the last TabuListSize removed arcs and stops after
// TabuNoImprovementLimit iterations without a new best tour.
func TabuSearch(base solver.Options[Tour]) (*solver.TabuSearch[Tour, Arc], error) {
	return solver.NewTabuSearch(ThreeOptTabu(), NewObjective(), tabuOptions(base))
}

// ParallelTabuSearch is TabuSearch with the neighborhood scanned concurrently.
func ParallelTabuSearch(base solver.Options[Tour]) (*solver.TabuSearch[Tour, Arc], error) {
	return solver.NewParallelTabuSearch(ThreeOptTabu(), NewObjective(), tabuOptions(base))
}

func tabuOptions(base solver.Options[Tour]) solver.TabuSearchOptions[Tour, Arc] {
	return solver.TabuSearchOptions[Tour, Arc]{
		Options:            base,
		TabuListSize:       TabuListSize,
		NoImprovementLimit: TabuNoImprovementLimit,
	}
}

// SimulatedAnnealing starts at the instance's average distance, cools by
// AnnealingCoolingFactor and uses the Metropolis rule on total distance.
// The random stream is fixed by AnnealingSeed.
func SimulatedAnnealing(in *Instance, base solver.Options[TourWithInfo]) (*solver.SimulatedAnnealing[TourWithInfo], error) {
	seed := uint64(AnnealingSeed)
	return solver.NewSimulatedAnnealing(RotatedThreeOpt(), NewObjectiveWithInfo(), solver.AnnealingOptions[TourWithInfo]{
		Options:            base,
		InitialTemperature: in.AverageDistance(),
		CoolingFactor:      AnnealingCoolingFactor,
		Acceptance:         solver.MetropolisAcceptance(0),
		Seed:               &seed,
	})
}

// ThresholdAccepting starts with the instance's largest distance as
// threshold and shrinks it by ThresholdFactor.
func ThresholdAccepting(in *Instance, base solver.Options[Tour]) (*solver.ThresholdAccepting[Tour], error) {
	return solver.NewThresholdAccepting(ThreeOpt(), NewObjective(), solver.ThresholdOptions[Tour]{
		Options:          base,
		InitialThreshold: objective.NewObjectiveValue(objective.Float(in.MaxDistance())),
		ThresholdFactor:  ThresholdFactor,
	})
}
