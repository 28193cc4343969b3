package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// ThresholdOptions configures ThresholdAccepting.
type ThresholdOptions[S any] struct {
	Options[S]
	// InitialThreshold has one entry per objective level. Only the length is
	// checked by NewThresholdAccepting: each entry must be Zero or of the
	// kind its level evaluates to, or Solve panics on its first comparison.
	InitialThreshold objective.ObjectiveValue
	// ThresholdFactor multiplies the threshold after each accepted
	// non-improving move; must lie in (0,1).
	ThresholdFactor float32
}

// ThresholdAccepting is the deterministic analogue of SimulatedAnnealing: it
// accepts the first candidate whose value is below current + threshold.
type ThresholdAccepting[S any] struct {
	nb   neighborhood.Neighborhood[S]
	obj  *objective.Objective[S]
	opts ThresholdOptions[S]
}

// NewThresholdAccepting validates opts.
func NewThresholdAccepting[S any](nb neighborhood.Neighborhood[S], obj *objective.Objective[S], opts ThresholdOptions[S]) (*ThresholdAccepting[S], error) {
	switch {
	case nb == nil || obj == nil:
		return nil, fmt.Errorf("%s: nil neighborhood or objective: %w", nameThresholdAccepting, ErrInvalidOptions)
	case opts.InitialThreshold.Len() != obj.Levels():
		return nil, fmt.Errorf("%s: InitialThreshold has %d levels, objective %d: %w",
			nameThresholdAccepting, opts.InitialThreshold.Len(), obj.Levels(), ErrInvalidOptions)
	case !(opts.ThresholdFactor > 0 && opts.ThresholdFactor < 1):
		return nil, fmt.Errorf("%s: ThresholdFactor %v not in (0,1): %w", nameThresholdAccepting, opts.ThresholdFactor, ErrInvalidOptions)
	}
	if err := opts.Limits.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", nameThresholdAccepting, err)
	}
	return &ThresholdAccepting[S]{nb: nb, obj: obj, opts: opts}, nil
}

// Solve returns the best solution seen. It stops when a full sweep accepts
// nothing or a limit is hit.
func (ta *ThresholdAccepting[S]) Solve(ctx context.Context, initial S) objective.EvaluatedSolution[S] {
	var (
		r         = begin(ctx, nameThresholdAccepting, &ta.opts.Options, ta.obj)
		threshold = ta.opts.InitialThreshold
		current   = ta.obj.Evaluate(initial)
		best      = current
		reason    StopReason
	)
	for {
		if !r.next() {
			reason = StopCancelled
			break
		}
		t0 := time.Now()
		next, ok := ta.sweep(r.ctx, current, current.Value().Add(threshold))
		r.timed(t0)
		if !ok {
			reason = r.failed(StopNoCandidate)
			break
		}
		prev := current
		current = next
		if !current.Less(prev) {
			threshold = threshold.ScaleFloat(ta.opts.ThresholdFactor)
		}
		if current.Less(best) {
			best = current
		}
		r.step(Step[S]{Current: current, Previous: &prev, Threshold: threshold})

		if why, stop := r.limitReached(); stop {
			reason = why
			break
		}
	}
	r.end(reason, best)
	return best
}

func (ta *ThresholdAccepting[S]) sweep(ctx context.Context, current objective.EvaluatedSolution[S], bound objective.ObjectiveValue) (objective.EvaluatedSolution[S], bool) {
	for s := range ta.nb.NeighborsOf(current.Solution()) {
		if ctx.Err() != nil {
			break
		}
		if cand := ta.obj.Evaluate(s); cand.Value().Less(bound) {
			return cand, true
		}
	}
	return objective.EvaluatedSolution[S]{}, false
}
