package improver

import (
	"context"

	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// Minimizer scans the whole neighborhood and returns its minimum if that is
// strictly better than the current solution. Among equal minima the earliest
// neighbor wins.
type Minimizer[S any] struct {
	nb  neighborhood.Neighborhood[S]
	obj *objective.Objective[S]
	settings
}

// NewMinimizer returns a sequential best-improvement strategy.
func NewMinimizer[S any](nb neighborhood.Neighborhood[S], obj *objective.Objective[S], opts ...Option) *Minimizer[S] {
	return &Minimizer[S]{nb: nb, obj: obj, settings: resolve(nameMinimizer, opts)}
}

// Improve implements LocalImprover.
func (m *Minimizer[S]) Improve(ctx context.Context, current objective.EvaluatedSolution[S]) (objective.EvaluatedSolution[S], bool) {
	var (
		best  objective.EvaluatedSolution[S]
		seen  int
		ev    objective.EvaluatedSolution[S]
		found bool
	)
	for s := range m.nb.NeighborsOf(current.Solution()) {
		if ctx.Err() != nil {
			return objective.EvaluatedSolution[S]{}, false
		}
		ev = m.obj.Evaluate(s)
		if seen == 0 || ev.Less(best) {
			best = ev
		}
		seen++
	}

	if seen == 0 {
		m.logger.Warn("no neighbor available")
	}
	found = seen > 0 && best.Less(current)
	recordOutcome(nameMinimizer, seen, seen > 0, found)
	if !found {
		return objective.EvaluatedSolution[S]{}, false
	}
	return best, true
}
