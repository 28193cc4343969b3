// Package tsp - 3-exchange neighborhoods.
//
// Enumeration order is fixed: i ascending, then j, then k, with
// 0 <= i < j < k < n. Every neighborhood yields C(n,3) tours (fewer when
// tabu arcs filter moves out) and stops as soon as the consumer does.
package tsp

import (
	"iter"

	"github.com/katalvlaran/lvsolve/neighborhood"
)

// ThreeOpt returns the neighborhood of every 3-exchange move.
func ThreeOpt() neighborhood.Neighborhood[Tour] {
	return neighborhood.Func[Tour](func(t Tour) iter.Seq[Tour] {
		return func(yield func(Tour) bool) {
			n := len(t.nodes)
			for i := 0; i < n-2; i++ {
				if !yieldFrom(t, i, yield) {
					return
				}
			}
		}
	})
}

// yieldFrom yields every move with first index i. It reports false once
// yield has asked to stop.
func yieldFrom(t Tour, i int, yield func(Tour) bool) bool {
	n := len(t.nodes)
	for j := i + 1; j < n-1; j++ {
		for k := j + 1; k < n; k++ {
			if !yield(t.ThreeOptSwap(i, j, k)) {
				return false
			}
		}
	}
	return true
}

// RotatedThreeOpt enumerates the same moves as ThreeOpt, but the first index
// starts at LastI+1 and wraps around, so annealing-type solvers do not keep
// retrying the region they just changed. Every neighbor records its own i
// as LastI.
func RotatedThreeOpt() neighborhood.Neighborhood[TourWithInfo] {
	return neighborhood.Func[TourWithInfo](func(tw TourWithInfo) iter.Seq[TourWithInfo] {
		return func(yield func(TourWithInfo) bool) {
			var (
				n     = len(tw.nodes)
				start = tw.LastI + 1
			)
			if start < 0 || start > n-2 {
				start = 0
			}
			for r := 0; r < n-2; r++ {
				i := (start + r) % (n - 2)
				ok := yieldFrom(tw.Tour, i, func(t Tour) bool {
					return yield(TourWithInfo{Tour: t, LastI: i})
				})
				if !ok {
					return
				}
			}
		}
	})
}

// Arc is a directed arc of a tour; tabu search remembers removed arcs and
// forbids moves that would add one of them back.
type Arc struct {
	From, To int
}

// forbids reports whether the move (i, j, k) on nodes adds a back.
func (a Arc) forbids(nodes []int, i, j, k int) bool {
	n := len(nodes)
	return (a.From == nodes[i] && a.To == nodes[j+1]) ||
		(a.From == nodes[j] && a.To == nodes[(k+1)%n]) ||
		(a.From == nodes[k] && a.To == nodes[i+1])
}

// removedArcs returns the three arcs the move (i, j, k) takes out of nodes.
func removedArcs(nodes []int, i, j, k int) []Arc {
	n := len(nodes)
	return []Arc{
		{From: nodes[i], To: nodes[i+1]},
		{From: nodes[j], To: nodes[j+1]},
		{From: nodes[k], To: nodes[(k+1)%n]},
	}
}

// ThreeOptTabu returns the tabu neighborhood of every 3-exchange move that
// adds no forbidden arc. Each neighbor comes with the arcs its move removed.
//
// Complexity: O(n + |tabus|) per move.
func ThreeOptTabu() neighborhood.TabuNeighborhood[Tour, Arc] {
	return neighborhood.TabuFunc[Tour, Arc](func(t Tour, tabus []Arc) iter.Seq2[Tour, []Arc] {
		return func(yield func(Tour, []Arc) bool) {
			n := len(t.nodes)
			for i := 0; i < n-2; i++ {
				for j := i + 1; j < n-1; j++ {
				next:
					for k := j + 1; k < n; k++ {
						for _, a := range tabus {
							if a.forbids(t.nodes, i, j, k) {
								continue next
							}
						}
						if !yield(t.ThreeOptSwap(i, j, k), removedArcs(t.nodes, i, j, k)) {
							return
						}
					}
				}
			}
		}
	})
}
