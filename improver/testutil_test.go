// Package improver_test holds black-box tests of the improvement strategies.
// The helpers here build tiny integer problems whose optima are known.
package improver_test

import (
	"iter"

	"github.com/katalvlaran/lvsolve/neighborhood"
	"github.com/katalvlaran/lvsolve/objective"
)

// line is the neighborhood {x-1, x+1} on the integers.
var line = neighborhood.Func[int](func(x int) iter.Seq[int] {
	return func(yield func(int) bool) {
		_ = yield(x-1) && yield(x+1)
	}
})

// spread is the neighborhood {x-k ... x+k} \ {x}, in ascending order.
func spread(k int) neighborhood.Neighborhood[int] {
	return neighborhood.Func[int](func(x int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for d := -k; d <= k; d++ {
				if d == 0 {
					continue
				}
				if !yield(x + d) {
					return
				}
			}
		}
	})
}

// tableObjective scores x by table[x]; values outside the table score 100.
func tableObjective(table map[int]int64) *objective.Objective[int] {
	return objective.NewSingleIndicator(objective.IndicatorFunc("table", func(x int) objective.BaseValue {
		if v, ok := table[x]; ok {
			return objective.Integer(v)
		}
		return objective.Integer(100)
	}))
}

// absObjective is |x - target|.
func absObjective(target int) *objective.Objective[int] {
	return objective.NewSingleIndicator(objective.IndicatorFunc("dist", func(x int) objective.BaseValue {
		d := x - target
		if d < 0 {
			d = -d
		}
		return objective.Integer(int64(d))
	}))
}

// valley has a local minimum at 0 and a better one at 2, separated by 1.
var valley = map[int]int64{-2: 9, -1: 9, 0: 5, 1: 6, 2: 3, 3: 8}

// stepTabu moves ±1 and forbids returning to the origin of the move.
var stepTabu = neighborhood.TabuFunc[int, int](func(x int, tabus []int) iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		for _, n := range []int{x - 1, x + 1} {
			forbidden := false
			for _, t := range tabus {
				if t == n {
					forbidden = true
					break
				}
			}
			if forbidden {
				continue
			}
			if !yield(n, []int{x}) {
				return
			}
		}
	}
})
