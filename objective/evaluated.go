// SPDX-License-Identifier: MIT
// Package: lvsolve/objective

package objective

// EvaluatedSolution pairs a solution with its ObjectiveValue. Ordering
// delegates entirely to the value; the solution never takes part.
type EvaluatedSolution[S any] struct {
	solution S
	value    ObjectiveValue
}

// NewEvaluatedSolution pairs s with a value computed elsewhere, for problem
// plug-ins that evaluate incrementally. The caller guarantees that value is
// what the Objective would return for s.
func NewEvaluatedSolution[S any](s S, value ObjectiveValue) EvaluatedSolution[S] {
	return EvaluatedSolution[S]{solution: s, value: value}
}

// Solution returns the wrapped solution.
func (e EvaluatedSolution[S]) Solution() S { return e.solution }

// Value returns the objective value.
func (e EvaluatedSolution[S]) Value() ObjectiveValue { return e.value }

// Compare compares objective values.
func (e EvaluatedSolution[S]) Compare(o EvaluatedSolution[S]) int { return e.value.Compare(o.value) }

// Less reports whether e is strictly better than o.
func (e EvaluatedSolution[S]) Less(o EvaluatedSolution[S]) bool { return e.value.Less(o.value) }

// Equal reports whether e and o have equal objective values.
func (e EvaluatedSolution[S]) Equal(o EvaluatedSolution[S]) bool { return e.value.Equal(o.value) }
