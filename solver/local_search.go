package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvsolve/improver"
	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// LocalSearchOptions configures LocalSearch.
type LocalSearchOptions[S any] struct {
	Options[S]
	// Improver defaults to a Minimizer (ParallelMinimizer for the parallel variant).
	Improver improver.LocalImprover[S]
}

// LocalSearch repeatedly replaces the current solution with a strictly
// better neighbor until the improver finds none or a limit is hit.
type LocalSearch[S any] struct {
	name string
	obj  *objective.Objective[S]
	imp  improver.LocalImprover[S]
	opts Options[S]
}

// NewLocalSearch validates opts and returns a sequential local search.
func NewLocalSearch[S any](nb neighborhood.Neighborhood[S], obj *objective.Objective[S], opts LocalSearchOptions[S]) (*LocalSearch[S], error) {
	if opts.Improver == nil {
		opts.Improver = improver.NewMinimizer(nb, obj, opts.ImproverOptions()...)
	}
	return newLocalSearch(nameLocalSearch, obj, opts)
}

// NewParallelLocalSearch is NewLocalSearch with a ParallelMinimizer default.
func NewParallelLocalSearch[S any](nb neighborhood.Neighborhood[S], obj *objective.Objective[S], opts LocalSearchOptions[S]) (*LocalSearch[S], error) {
	if opts.Improver == nil {
		opts.Improver = improver.NewParallelMinimizer(nb, obj, opts.ImproverOptions()...)
	}
	return newLocalSearch(nameParallelLocalSearch, obj, opts)
}

func newLocalSearch[S any](name string, obj *objective.Objective[S], opts LocalSearchOptions[S]) (*LocalSearch[S], error) {
	if obj == nil {
		return nil, fmt.Errorf("%s: nil objective: %w", name, ErrInvalidOptions)
	}
	if err := opts.Limits.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &LocalSearch[S]{name: name, obj: obj, imp: opts.Improver, opts: opts.Options}, nil
}

// Solve returns the last solution reached, which is never worse than initial.
func (l *LocalSearch[S]) Solve(ctx context.Context, initial S) objective.EvaluatedSolution[S] {
	var (
		r       = begin(ctx, l.name, &l.opts, l.obj)
		current = l.obj.Evaluate(initial)
		reason  StopReason
	)
	for {
		if !r.next() {
			reason = StopCancelled
			break
		}
		t0 := time.Now()
		next, ok := l.imp.Improve(r.ctx, current)
		r.timed(t0)
		if !ok {
			reason = r.failed(StopLocalOptimum)
			break
		}
		prev := current
		current = next
		r.step(Step[S]{Current: current, Previous: &prev})

		if why, stop := r.limitReached(); stop {
			reason = why
			break
		}
	}
	r.end(reason, current)
	return current
}
