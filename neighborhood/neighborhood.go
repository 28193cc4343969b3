package neighborhood

import "iter"

// Neighborhood enumerates the neighbors of a solution.
type Neighborhood[S any] interface {
	NeighborsOf(s S) iter.Seq[S]
}

// Func adapts a function to the Neighborhood interface.
type Func[S any] func(s S) iter.Seq[S]

// NeighborsOf calls f(s).
func (f Func[S]) NeighborsOf(s S) iter.Seq[S] { return f(s) }

// TabuNeighborhood enumerates the neighbors of a solution that are not
// forbidden by tabus, each with the tokens the corresponding move creates.
type TabuNeighborhood[S, T any] interface {
	NeighborsOf(s S, tabus []T) iter.Seq2[S, []T]
}

// TabuFunc adapts a function to the TabuNeighborhood interface.
type TabuFunc[S, T any] func(s S, tabus []T) iter.Seq2[S, []T]

// NeighborsOf calls f(s, tabus).
func (f TabuFunc[S, T]) NeighborsOf(s S, tabus []T) iter.Seq2[S, []T] { return f(s, tabus) }

// Rotated yields nb.NeighborsOf(s) with the first r elements moved to the end.
//
// The neighborhood is enumerated twice, so it must be deterministic.
// r <= 0 yields the sequence unchanged; r at or beyond its length yields the
// whole sequence in original order.
//
// Complexity: O(len + r) calls into the underlying sequence, O(1) extra space.
func Rotated[S any](nb Neighborhood[S], s S, r int) iter.Seq[S] {
	if r <= 0 {
		return nb.NeighborsOf(s)
	}
	return func(yield func(S) bool) {
		var i int
		for n := range nb.NeighborsOf(s) {
			if i >= r {
				if !yield(n) {
					return
				}
			}
			i++
		}
		i = 0
		for n := range nb.NeighborsOf(s) {
			if i >= r {
				return
			}
			if !yield(n) {
				return
			}
			i++
		}
	}
}

// Collect drains a sequence into a slice. Intended for tests and small
// neighborhoods.
func Collect[S any](seq iter.Seq[S]) []S {
	var out []S
	for s := range seq {
		out = append(out, s)
	}
	return out
}

// Empty is a neighborhood without neighbors.
func Empty[S any]() Neighborhood[S] {
	return Func[S](func(S) iter.Seq[S] {
		return func(func(S) bool) {}
	})
}
