// SPDX-License-Identifier: MIT
// Package: lvsolve/objective
//
// Package objective models hierarchical, lexicographically ordered objective
// values over heterogeneous scalars.
//
// What:
//   - BaseValue: a closed scalar variant {Integer, Float, Duration, Maximum, Zero}.
//   - Coefficient: an Integer or Float weight applied to a BaseValue.
//   - ObjectiveValue: a fixed-length tuple of BaseValue, one per level,
//     compared lexicographically (level 0 dominates).
//   - Indicator / Level / Objective: problem-supplied scoring functions, summed
//     per level with weights, stacked into a hierarchy.
//   - EvaluatedSolution: a solution paired with its ObjectiveValue.
//
// Ordering:
//
//	Maximum is strictly greater than every other value and equal only to itself.
//	Zero is the additive identity and compares like the typed zero of the
//	other operand. Floats compare equal within FloatTolerance (1e-4).
//
// Failure model:
//   - Arithmetic or comparison between mismatched kinds (Integer vs Duration)
//     is a programming error and panics with a *KindMismatchError.
//   - A Duration result below zero panics with ErrNegativeDuration.
//   - Nothing else panics; every value is immutable and safe to share.
//
// Example:
//
//	dist := objective.IndicatorFunc("Distance", func(t Tour) objective.BaseValue {
//		return objective.Float(t.Length())
//	})
//	obj := objective.NewSingleIndicator[Tour](dist)
//	ev := obj.Evaluate(tour)
//	fmt.Println(ev.Value()) // [123.45]
package objective
