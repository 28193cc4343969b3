package solver

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/config"
	"github.com/katalvlaran/lvsolve/improver"
	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// LimitsFromConfig converts configured limits.
func LimitsFromConfig(c config.Limits) Limits {
	return Limits{TimeLimit: c.TimeLimit, IterationLimit: c.IterationLimit}
}

func fromConfigBase[S any](cfg config.Config, base Options[S]) Options[S] {
	base.Limits = LimitsFromConfig(cfg.Limits)
	return base
}

func wantSolver(cfg config.Config, kinds ...string) error {
	for _, k := range kinds {
		if cfg.Solver == k {
			return nil
		}
	}
	return fmt.Errorf("%w: solver %q, want one of %v", ErrInvalidOptions, cfg.Solver, kinds)
}

// LocalSearchFromConfig builds a local_search or parallel_local_search
// solver. base supplies the observer, logger and tracer; its limits are
// replaced by the configured ones.
func LocalSearchFromConfig[S any](cfg config.Config, nb neighborhood.Neighborhood[S], obj *objective.Objective[S], base Options[S]) (*LocalSearch[S], error) {
	if err := wantSolver(cfg, config.SolverLocalSearch, config.SolverParallelLocalSearch); err != nil {
		return nil, err
	}
	fallback, name := config.ImproverMinimizer, nameLocalSearch
	if cfg.Solver == config.SolverParallelLocalSearch {
		fallback, name = config.ImproverParallelMinimizer, nameParallelLocalSearch
	}
	imp, err := improver.FromConfig(cfg.Improver, fallback, nb, obj, base.ImproverOptions()...)
	if err != nil {
		return nil, err
	}
	return newLocalSearch(name, obj, LocalSearchOptions[S]{Options: fromConfigBase(cfg, base), Improver: imp})
}

// TabuSearchFromConfig builds a tabu_search or parallel_tabu_search solver.
func TabuSearchFromConfig[S, T any](cfg config.Config, nb neighborhood.TabuNeighborhood[S, T], obj *objective.Objective[S], base Options[S]) (*TabuSearch[S, T], error) {
	if err := wantSolver(cfg, config.SolverTabuSearch, config.SolverParallelTabuSearch); err != nil {
		return nil, err
	}
	fallback, name := config.ImproverTabuMinimizer, nameTabuSearch
	if cfg.Solver == config.SolverParallelTabuSearch {
		fallback, name = config.ImproverParallelTabuMinimizer, nameParallelTabuSearch
	}
	imp, err := improver.TabuFromConfig(cfg.Improver, fallback, nb, obj, base.ImproverOptions()...)
	if err != nil {
		return nil, err
	}
	return newTabuSearch(name, obj, TabuSearchOptions[S, T]{
		Options:            fromConfigBase(cfg, base),
		Improver:           imp,
		TabuListSize:       cfg.Tabu.ListSize,
		NoImprovementLimit: cfg.Tabu.NoImprovementLimit,
	})
}

// SimulatedAnnealingFromConfig builds a simulated_annealing solver; the
// acceptance function is problem-specific and supplied by the caller.
func SimulatedAnnealingFromConfig[S any](cfg config.Config, nb neighborhood.Neighborhood[S], obj *objective.Objective[S], acceptance AcceptanceFunc, base Options[S]) (*SimulatedAnnealing[S], error) {
	if err := wantSolver(cfg, config.SolverSimulatedAnnealing); err != nil {
		return nil, err
	}
	return NewSimulatedAnnealing(nb, obj, AnnealingOptions[S]{
		Options:            fromConfigBase(cfg, base),
		InitialTemperature: cfg.Annealing.InitialTemperature,
		CoolingFactor:      cfg.Annealing.CoolingFactor,
		Acceptance:         acceptance,
		Seed:               cfg.Annealing.Seed,
	})
}

// ThresholdAcceptingFromConfig builds a threshold_accepting solver; the
// initial threshold is typed per level and supplied by the caller.
func ThresholdAcceptingFromConfig[S any](cfg config.Config, nb neighborhood.Neighborhood[S], obj *objective.Objective[S], initial objective.ObjectiveValue, base Options[S]) (*ThresholdAccepting[S], error) {
	if err := wantSolver(cfg, config.SolverThresholdAccepting); err != nil {
		return nil, err
	}
	return NewThresholdAccepting(nb, obj, ThresholdOptions[S]{
		Options:          fromConfigBase(cfg, base),
		InitialThreshold: initial,
		ThresholdFactor:  float32(cfg.Threshold.Factor),
	})
}
