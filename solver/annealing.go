package solver

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// AcceptanceFunc returns the probability of moving from current to candidate
// at the given temperature. Values >= 1 always accept.
type AcceptanceFunc func(current, candidate objective.ObjectiveValue, temperature float64) float64

// MetropolisAcceptance is the classic rule on one objective level: 1 for a
// strictly better candidate, else exp((current - candidate) / temperature).
// Integer and Duration (in seconds) levels are converted to float64; Maximum
// is +Inf.
func MetropolisAcceptance(level int) AcceptanceFunc {
	return func(current, candidate objective.ObjectiveValue, temperature float64) float64 {
		if candidate.Less(current) {
			return 1
		}
		return math.Exp((levelFloat(current.At(level)) - levelFloat(candidate.At(level))) / temperature)
	}
}

func levelFloat(v objective.BaseValue) float64 {
	switch v.Kind() {
	case objective.KindInteger:
		return float64(v.AsInteger())
	case objective.KindFloat:
		return v.AsFloat()
	case objective.KindDuration:
		return v.AsDuration().Seconds()
	case objective.KindMaximum:
		return math.Inf(1)
	default:
		return 0
	}
}

// AnnealingOptions configures SimulatedAnnealing.
type AnnealingOptions[S any] struct {
	Options[S]
	// InitialTemperature must be > 0.
	InitialTemperature float64
	// CoolingFactor multiplies the temperature after each accepted
	// non-improving move; must lie in (0,1).
	CoolingFactor float64
	// Acceptance is required.
	Acceptance AcceptanceFunc
	// Seed fixes the random stream; every value, zero included, is used as
	// is. nil draws a fresh stream per Solve.
	Seed *uint64
}

// SimulatedAnnealing scans the neighborhood in order and accepts the first
// candidate whose acceptance probability exceeds a uniform draw in [0,1).
type SimulatedAnnealing[S any] struct {
	nb   neighborhood.Neighborhood[S]
	obj  *objective.Objective[S]
	opts AnnealingOptions[S]
}

// NewSimulatedAnnealing validates opts.
func NewSimulatedAnnealing[S any](nb neighborhood.Neighborhood[S], obj *objective.Objective[S], opts AnnealingOptions[S]) (*SimulatedAnnealing[S], error) {
	switch {
	case nb == nil || obj == nil:
		return nil, fmt.Errorf("%s: nil neighborhood or objective: %w", nameSimulatedAnnealing, ErrInvalidOptions)
	case opts.Acceptance == nil:
		return nil, fmt.Errorf("%s: nil Acceptance: %w", nameSimulatedAnnealing, ErrInvalidOptions)
	case !(opts.InitialTemperature > 0):
		return nil, fmt.Errorf("%s: InitialTemperature %v <= 0: %w", nameSimulatedAnnealing, opts.InitialTemperature, ErrInvalidOptions)
	case !(opts.CoolingFactor > 0 && opts.CoolingFactor < 1):
		return nil, fmt.Errorf("%s: CoolingFactor %v not in (0,1): %w", nameSimulatedAnnealing, opts.CoolingFactor, ErrInvalidOptions)
	}
	if err := opts.Limits.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", nameSimulatedAnnealing, err)
	}
	return &SimulatedAnnealing[S]{nb: nb, obj: obj, opts: opts}, nil
}

// Solve returns the best solution seen. It stops when a full sweep accepts
// nothing or a limit is hit.
func (a *SimulatedAnnealing[S]) Solve(ctx context.Context, initial S) objective.EvaluatedSolution[S] {
	var (
		r       = begin(ctx, nameSimulatedAnnealing, &a.opts.Options, a.obj)
		rng     = rngFromSeed(a.opts.Seed)
		temp    = a.opts.InitialTemperature
		current = a.obj.Evaluate(initial)
		best    = current
		reason  StopReason
	)
	for {
		if !r.next() {
			reason = StopCancelled
			break
		}
		t0 := time.Now()
		next, ok := a.sweep(r.ctx, current, temp, rng.Float64)
		r.timed(t0)
		if !ok {
			reason = r.failed(StopNoCandidate)
			break
		}
		prev := current
		current = next
		if !current.Less(prev) {
			temp *= a.opts.CoolingFactor
		}
		if current.Less(best) {
			best = current
		}
		r.step(Step[S]{Current: current, Previous: &prev, Temperature: temp})

		if why, stop := r.limitReached(); stop {
			reason = why
			break
		}
	}
	r.end(reason, best)
	return best
}

func (a *SimulatedAnnealing[S]) sweep(ctx context.Context, current objective.EvaluatedSolution[S], temp float64, draw func() float64) (objective.EvaluatedSolution[S], bool) {
	for s := range a.nb.NeighborsOf(current.Solution()) {
		if ctx.Err() != nil {
			break
		}
		cand := a.obj.Evaluate(s)
		if a.opts.Acceptance(current.Value(), cand.Value(), temp) > draw() {
			return cand, true
		}
	}
	return objective.EvaluatedSolution[S]{}, false
}
