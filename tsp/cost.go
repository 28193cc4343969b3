// Package tsp - cost utilities.
//
// Design:
//   - Stable summation: totals are rounded to 1e-9 so that a from-scratch
//     total and a chain of incremental updates agree across platforms.
//
// Complexity:
//   - TourCost is O(n); threeOptDelta is O(1).
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

func round1e9(x float64) float64 { return math.Round(x*roundScale) / roundScale }

// TourCost sums d(nodes[i], nodes[i+1]) around the closed cycle, including
// the arc from the last node back to the first. nodes must be a permutation
// of the instance's nodes (see ValidatePermutation).
func TourCost(in *Instance, nodes []int) float64 {
	var (
		n   = len(nodes)
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += in.Distance(nodes[i], nodes[(i+1)%n])
	}
	return round1e9(sum)
}

// threeOptDelta is the change in total distance caused by the 3-exchange
// move (i, j, k), 0 <= i < j < k < n.
//
//	removed: (i,i+1) (j,j+1) (k,k+1)
//	added:   (i,j+1) (j,k+1) (k,i+1)
func threeOptDelta(in *Instance, nodes []int, i, j, k int) float64 {
	var (
		n  = len(nodes)
		a  = nodes[i]
		a1 = nodes[i+1]
		b  = nodes[j]
		b1 = nodes[j+1]
		c  = nodes[k]
		c1 = nodes[(k+1)%n]
	)
	return in.Distance(a, b1) + in.Distance(b, c1) + in.Distance(c, a1) -
		in.Distance(a, a1) - in.Distance(b, b1) - in.Distance(c, c1)
}
