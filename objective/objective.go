// SPDX-License-Identifier: MIT
// Package: lvsolve/objective
//
// objective.go - indicators, weighted levels and the level hierarchy.
//
// Contracts:
//   • Indicators are pure and safe for concurrent use; improvers call them
//     from many goroutines at once.
//   • Objective is immutable after construction and may be shared freely.
//
// Complexity: Evaluate is O(Σ indicator cost) and allocates one slice.

package objective

import (
	"fmt"
	"strings"
)

// Indicator scores one aspect of a solution.
type Indicator[S any] interface {
	Evaluate(solution S) BaseValue
	Name() string
}

type indicatorFunc[S any] struct {
	name string
	fn   func(S) BaseValue
}

func (f indicatorFunc[S]) Evaluate(s S) BaseValue { return f.fn(s) }
func (f indicatorFunc[S]) Name() string           { return f.name }

// IndicatorFunc adapts a plain function to the Indicator interface.
// Panics on a nil fn.
func IndicatorFunc[S any](name string, fn func(S) BaseValue) Indicator[S] {
	if fn == nil {
		panic("objective: IndicatorFunc(nil)")
	}
	return indicatorFunc[S]{name: name, fn: fn}
}

// Summand is a weighted indicator.
type Summand[S any] struct {
	Coefficient Coefficient
	Indicator   Indicator[S]
}

// Weighted builds a Summand.
func Weighted[S any](c Coefficient, ind Indicator[S]) Summand[S] {
	return Summand[S]{Coefficient: c, Indicator: ind}
}

// Level is a weighted sum of indicators.
type Level[S any] struct {
	summands []Summand[S]
}

// NewLevel builds a Level from its summands.
func NewLevel[S any](summands ...Summand[S]) Level[S] {
	cp := make([]Summand[S], len(summands))
	copy(cp, summands)
	return Level[S]{summands: cp}
}

// Evaluate sums the weighted indicator values, starting from Zero.
func (l Level[S]) Evaluate(s S) BaseValue {
	acc := Zero()
	for _, sm := range l.summands {
		acc = acc.Add(sm.Coefficient.Scale(sm.Indicator.Evaluate(s)))
	}
	return acc
}

// String renders "A + 2*B"; unit coefficients are omitted.
func (l Level[S]) String() string {
	parts := make([]string, len(l.summands))
	for i, sm := range l.summands {
		if sm.Coefficient.IsOne() {
			parts[i] = sm.Indicator.Name()
			continue
		}
		parts[i] = sm.Coefficient.String() + "*" + sm.Indicator.Name()
	}
	return strings.Join(parts, " + ")
}

// Objective is an ordered hierarchy of levels; level 0 dominates.
type Objective[S any] struct {
	levels []Level[S]
}

// New builds an Objective from levels. Panics with ErrNoLevels if none given.
func New[S any](levels ...Level[S]) *Objective[S] {
	if len(levels) == 0 {
		panic(ErrNoLevels)
	}
	cp := make([]Level[S], len(levels))
	copy(cp, levels)
	return &Objective[S]{levels: cp}
}

// NewSingleLevel builds a one-level Objective.
func NewSingleLevel[S any](level Level[S]) *Objective[S] {
	return New(level)
}

// NewSingleIndicator builds a one-level Objective scoring a single indicator.
func NewSingleIndicator[S any](ind Indicator[S]) *Objective[S] {
	return New(NewLevel(Weighted(One(), ind)))
}

// NewSingleIndicatorPerLevel builds one level per indicator, in order.
func NewSingleIndicatorPerLevel[S any](inds ...Indicator[S]) *Objective[S] {
	levels := make([]Level[S], len(inds))
	for i, ind := range inds {
		levels[i] = NewLevel(Weighted(One(), ind))
	}
	return New(levels...)
}

// Evaluate scores s on every level.
func (o *Objective[S]) Evaluate(s S) EvaluatedSolution[S] {
	vals := make([]BaseValue, len(o.levels))
	for i, l := range o.levels {
		vals[i] = l.Evaluate(s)
	}
	return EvaluatedSolution[S]{solution: s, value: ObjectiveValue{levels: vals}}
}

// Levels returns the number of levels.
func (o *Objective[S]) Levels() int { return len(o.levels) }

// Zero returns the all-Zero value sized to the hierarchy.
func (o *Objective[S]) Zero() ObjectiveValue {
	return ObjectiveValue{levels: make([]BaseValue, len(o.levels))}
}

// Maximum returns the all-Maximum value sized to the hierarchy.
func (o *Objective[S]) Maximum() ObjectiveValue {
	vals := make([]BaseValue, len(o.levels))
	for i := range vals {
		vals[i] = Maximum()
	}
	return ObjectiveValue{levels: vals}
}

// LevelNames returns the display name of every level.
func (o *Objective[S]) LevelNames() []string {
	names := make([]string, len(o.levels))
	for i, l := range o.levels {
		names[i] = l.String()
	}
	return names
}

// LevelReading is one level of an ObjectiveValue with its display name and
// the change relative to a previous value.
type LevelReading struct {
	Name  string
	Value BaseValue
	Diff  string
}

// Describe pairs each level of v with its name. When prev is non-nil the
// Diff field holds the signed change from prev.
func (o *Objective[S]) Describe(v ObjectiveValue, prev *ObjectiveValue) []LevelReading {
	if v.Len() != len(o.levels) {
		panic(fmt.Errorf("%w: Describe on %d levels, objective has %d", ErrLengthMismatch, v.Len(), len(o.levels)))
	}
	out := make([]LevelReading, len(o.levels))
	for i, l := range o.levels {
		out[i] = LevelReading{Name: l.String(), Value: v.At(i)}
		if prev != nil {
			out[i].Diff = v.At(i).Diff(prev.At(i))
		}
	}
	return out
}
