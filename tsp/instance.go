package tsp

import "github.com/katalvlaran/lvsolve/matrix"

// Instance is an immutable, validated distance matrix. d(i,j) may differ
// from d(j,i).
type Instance struct {
	dist *matrix.Dense
}

// NewInstance copies and validates dist.
//
// Returns ErrTooFewNodes, ErrDimensionMismatch, ErrIncompleteGraph or
// ErrNegativeWeight (wrapped).
func NewInstance(dist [][]float64) (*Instance, error) {
	if _, err := validateDistMatrix(dist); err != nil {
		return nil, err
	}
	d, err := matrix.NewDenseFromRows(dist)
	if err != nil {
		return nil, err
	}
	return &Instance{dist: d}, nil
}

// Len returns the number of nodes.
func (in *Instance) Len() int { return in.dist.Rows() }

// Distance returns d(from, to).
func (in *Instance) Distance(from, to int) float64 { return in.dist.Get(from, to) }

// Matrix returns a copy of the distance table.
func (in *Instance) Matrix() *matrix.Dense { return in.dist.Clone() }

// AverageDistance is the mean off-diagonal distance, a customary initial
// temperature for simulated annealing.
//
// Complexity: O(n²).
func (in *Instance) AverageDistance() float64 {
	var (
		n   = in.Len()
		sum float64
	)
	in.dist.Do(func(i, j int, v float64) bool {
		if i != j {
			sum += v
		}
		return true
	})
	return sum / float64(n*(n-1))
}

// MaxDistance is the largest off-diagonal distance, a customary initial
// threshold for threshold accepting.
//
// Complexity: O(n²).
func (in *Instance) MaxDistance() float64 {
	var longest float64
	in.dist.Do(func(i, j int, v float64) bool {
		if i != j && v > longest {
			longest = v
		}
		return true
	})
	return longest
}
