package improver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// TakeFirst returns the first neighbor, in neighborhood order, that is
// strictly better than the current solution.
type TakeFirst[S any] struct {
	nb  neighborhood.Neighborhood[S]
	obj *objective.Objective[S]
	settings
}

// NewTakeFirst returns a sequential first-improvement strategy.
func NewTakeFirst[S any](nb neighborhood.Neighborhood[S], obj *objective.Objective[S], opts ...Option) *TakeFirst[S] {
	return &TakeFirst[S]{nb: nb, obj: obj, settings: resolve(nameTakeFirst, opts)}
}

// Improve implements LocalImprover.
func (t *TakeFirst[S]) Improve(ctx context.Context, current objective.EvaluatedSolution[S]) (objective.EvaluatedSolution[S], bool) {
	var seen int
	for s := range t.nb.NeighborsOf(current.Solution()) {
		if ctx.Err() != nil {
			break
		}
		ev := t.obj.Evaluate(s)
		seen++
		if ev.Less(current) {
			recordOutcome(nameTakeFirst, seen, true, true)
			return ev, true
		}
	}
	if seen == 0 {
		t.logger.Warn("no neighbor available")
	}
	recordOutcome(nameTakeFirst, seen, seen > 0, false)
	return objective.EvaluatedSolution[S]{}, false
}

// TakeFirstRecursion is TakeFirst with bounded-width backtracking: when a
// scan finds nothing better than the original value, the best width
// distinct-by-value candidates of that scan become the next frontier, and
// the union of their neighborhoods is scanned, up to depth more times.
// The value to beat never changes across levels.
type TakeFirstRecursion[S any] struct {
	nb    neighborhood.Neighborhood[S]
	obj   *objective.Objective[S]
	depth int
	width int
	settings
}

// NewTakeFirstRecursion panics if depth < 0 or width < 1.
// Depth 0 behaves like TakeFirst.
func NewTakeFirstRecursion[S any](depth, width int, nb neighborhood.Neighborhood[S], obj *objective.Objective[S], opts ...Option) *TakeFirstRecursion[S] {
	if depth < 0 || width < 1 {
		panic(fmt.Sprintf("improver: NewTakeFirstRecursion(depth=%d, width=%d)", depth, width))
	}
	return &TakeFirstRecursion[S]{nb: nb, obj: obj, depth: depth, width: width, settings: resolve(nameTakeFirstRecursion, opts)}
}

// Improve implements LocalImprover.
func (t *TakeFirstRecursion[S]) Improve(ctx context.Context, current objective.EvaluatedSolution[S]) (objective.EvaluatedSolution[S], bool) {
	var (
		toBeat   = current.Value()
		frontier = []objective.EvaluatedSolution[S]{current}
		seen     int
		level    int
	)
	for level = 0; level <= t.depth; level++ {
		if level > 0 {
			recursionsTotal.WithLabelValues(nameTakeFirstRecursion).Inc()
			t.logger.Debug("recursing", slog.Int("level", level), slog.Int("frontier", len(frontier)))
		}
		next := newPool[S](t.width)
		keep := level < t.depth
		for _, f := range frontier {
			for s := range t.nb.NeighborsOf(f.Solution()) {
				if ctx.Err() != nil {
					recordOutcome(nameTakeFirstRecursion, seen, seen > 0, false)
					return objective.EvaluatedSolution[S]{}, false
				}
				ev := t.obj.Evaluate(s)
				seen++
				if ev.Value().Less(toBeat) {
					recordOutcome(nameTakeFirstRecursion, seen, true, true)
					return ev, true
				}
				if keep {
					next.insert(ev)
				}
			}
		}
		frontier = next.solutions()
		if len(frontier) == 0 {
			break
		}
	}
	if seen == 0 {
		t.logger.Warn("no neighbor available")
	}
	recordOutcome(nameTakeFirstRecursion, seen, seen > 0, false)
	return objective.EvaluatedSolution[S]{}, false
}
