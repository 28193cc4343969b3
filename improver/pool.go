package improver

import (
	"slices"

	"github.com/katalvlaran/lvsolve/objective"
)

// pool keeps the best candidates seen so far, sorted ascending and
// deduplicated by objective value. width <= 0 means unbounded.
type pool[S any] struct {
	items []objective.EvaluatedSolution[S]
	width int
}

func newPool[S any](width int) *pool[S] {
	return &pool[S]{width: width}
}

func byValue[S any](a, b objective.EvaluatedSolution[S]) int { return a.Compare(b) }

// insert adds ev unless an equal value is present, then truncates.
//
// Complexity: O(log n) search plus O(n) shift.
func (p *pool[S]) insert(ev objective.EvaluatedSolution[S]) {
	if p.width > 0 && len(p.items) == p.width && ev.Compare(p.items[len(p.items)-1]) >= 0 {
		return
	}
	i, found := slices.BinarySearchFunc(p.items, ev, byValue[S])
	if found {
		return
	}
	p.items = slices.Insert(p.items, i, ev)
	if p.width > 0 && len(p.items) > p.width {
		p.items = p.items[:p.width]
	}
}

func (p *pool[S]) merge(items []objective.EvaluatedSolution[S]) {
	for _, ev := range items {
		p.insert(ev)
	}
}

func (p *pool[S]) solutions() []objective.EvaluatedSolution[S] { return p.items }
