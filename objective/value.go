// SPDX-License-Identifier: MIT
// Package: lvsolve/objective
//
// value.go - ObjectiveValue, the lexicographic tuple compared by every improver.
//
// Contracts:
//   • Length is fixed at construction and equals the Objective's level count.
//   • Binary operations on values of different length panic (ErrLengthMismatch).
//   • Values are immutable; Values() returns a copy.

package objective

import (
	"fmt"
	"strings"
)

// ObjectiveValue is an ordered tuple of BaseValue, one per level.
type ObjectiveValue struct {
	levels []BaseValue
}

// NewObjectiveValue copies values into a new ObjectiveValue.
func NewObjectiveValue(values ...BaseValue) ObjectiveValue {
	cp := make([]BaseValue, len(values))
	copy(cp, values)
	return ObjectiveValue{levels: cp}
}

// Len returns the number of levels.
func (v ObjectiveValue) Len() int { return len(v.levels) }

// At returns the value of level i.
func (v ObjectiveValue) At(i int) BaseValue { return v.levels[i] }

// Values returns a copy of the level values.
func (v ObjectiveValue) Values() []BaseValue {
	cp := make([]BaseValue, len(v.levels))
	copy(cp, v.levels)
	return cp
}

// Compare orders v and o lexicographically; the first differing level decides.
func (v ObjectiveValue) Compare(o ObjectiveValue) int {
	mustSameLen("Compare", v, o)
	var i, c int
	for i = range v.levels {
		if c = v.levels[i].Compare(o.levels[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports v.Compare(o) == 0.
func (v ObjectiveValue) Equal(o ObjectiveValue) bool { return v.Compare(o) == 0 }

// Less reports v.Compare(o) < 0.
func (v ObjectiveValue) Less(o ObjectiveValue) bool { return v.Compare(o) < 0 }

// Add returns the elementwise sum.
func (v ObjectiveValue) Add(o ObjectiveValue) ObjectiveValue {
	mustSameLen("Add", v, o)
	out := make([]BaseValue, len(v.levels))
	for i := range v.levels {
		out[i] = v.levels[i].Add(o.levels[i])
	}
	return ObjectiveValue{levels: out}
}

// Sub returns the elementwise difference.
func (v ObjectiveValue) Sub(o ObjectiveValue) ObjectiveValue {
	mustSameLen("Sub", v, o)
	out := make([]BaseValue, len(v.levels))
	for i := range v.levels {
		out[i] = v.levels[i].Sub(o.levels[i])
	}
	return ObjectiveValue{levels: out}
}

// Scale multiplies every level by c.
func (v ObjectiveValue) Scale(c Coefficient) ObjectiveValue {
	out := make([]BaseValue, len(v.levels))
	for i := range v.levels {
		out[i] = c.Scale(v.levels[i])
	}
	return ObjectiveValue{levels: out}
}

// ScaleInt multiplies every level by an integer factor.
func (v ObjectiveValue) ScaleInt(c int32) ObjectiveValue { return v.Scale(IntCoefficient(c)) }

// ScaleFloat multiplies every level by a float factor (threshold decay).
func (v ObjectiveValue) ScaleFloat(c float32) ObjectiveValue { return v.Scale(FloatCoefficient(c)) }

// String renders "[a, b, c]".
func (v ObjectiveValue) String() string {
	parts := make([]string, len(v.levels))
	for i, b := range v.levels {
		parts[i] = b.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func mustSameLen(op string, a, b ObjectiveValue) {
	if len(a.levels) != len(b.levels) {
		panic(fmt.Errorf("%w: %s on %d and %d levels", ErrLengthMismatch, op, len(a.levels), len(b.levels)))
	}
}
