// Package tsp - tours and the 3-exchange move.
//
// Design:
//   - A Tour is an open permutation (no repeated closing node); the cycle
//     closes implicitly from the last node back to nodes[0].
//   - Tours are immutable. ThreeOptSwap allocates a fresh node slice.
//   - The cached length is updated incrementally in O(1) per move.
package tsp

import "fmt"

// Tour is a Hamiltonian cycle over an Instance.
type Tour struct {
	nodes  []int
	length float64
	in     *Instance
}

// NewTour validates nodes as a permutation of the instance's nodes and
// computes the tour length from scratch.
//
// Complexity: O(n).
func NewTour(in *Instance, nodes []int) (Tour, error) {
	if err := ValidatePermutation(nodes, in.Len()); err != nil {
		return Tour{}, fmt.Errorf("tsp: tour %v: %w", nodes, err)
	}
	cp := append([]int(nil), nodes...)
	return Tour{nodes: cp, length: TourCost(in, cp), in: in}, nil
}

// Nodes returns a copy of the visiting order.
func (t Tour) Nodes() []int { return append([]int(nil), t.nodes...) }

// Length returns the cached total distance.
func (t Tour) Length() float64 { return t.length }

// Instance returns the instance the tour belongs to.
func (t Tour) Instance() *Instance { return t.in }

// String renders the order and the length.
func (t Tour) String() string { return fmt.Sprintf("%v (%.2f)", t.nodes, t.length) }

// ThreeOptSwap applies the 3-exchange move (i, j, k). It panics unless
// 0 <= i < j < k < n, which every neighborhood in this package guarantees.
//
// Complexity: O(n) for the new node slice, O(1) for the length.
func (t Tour) ThreeOptSwap(i, j, k int) Tour {
	n := len(t.nodes)
	if !(0 <= i && i < j && j < k && k < n) {
		panic(fmt.Sprintf("tsp: ThreeOptSwap(%d,%d,%d) on %d nodes", i, j, k, n))
	}

	out := make([]int, 0, n)
	out = append(out, t.nodes[:i+1]...)
	out = append(out, t.nodes[j+1:k+1]...)
	out = append(out, t.nodes[i+1:j+1]...)
	out = append(out, t.nodes[k+1:]...)

	return Tour{
		nodes:  out,
		length: round1e9(t.length + threeOptDelta(t.in, t.nodes, i, j, k)),
		in:     t.in,
	}
}

// NearestNeighborTour starts at node 0 and repeatedly visits the closest
// unvisited node; ties go to the smaller index.
//
// Complexity: O(n²).
func NearestNeighborTour(in *Instance) Tour {
	var (
		n       = in.Len()
		nodes   = make([]int, 1, n)
		visited = make([]bool, n)
		cur     int
		step    int
	)
	visited[0] = true
	for step = 1; step < n; step++ {
		next, best := -1, 0.0
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if d := in.Distance(cur, v); next < 0 || d < best {
				next, best = v, d
			}
		}
		visited[next] = true
		nodes = append(nodes, next)
		cur = next
	}
	return Tour{nodes: nodes, length: TourCost(in, nodes), in: in}
}

// TourWithInfo is a Tour labelled with the first index i of the 3-exchange
// move that produced it, so RotatedThreeOpt can resume after it.
type TourWithInfo struct {
	Tour
	LastI int
}
