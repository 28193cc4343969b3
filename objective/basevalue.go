// SPDX-License-Identifier: MIT
// Package: lvsolve/objective
//
// basevalue.go - the scalar building block of every objective value.
//
// Contracts:
//   • Zero is the additive identity and the zero value of BaseValue.
//   • Maximum absorbs + and the left side of -, and dominates every comparison.
//   • Mixed non-absorbing kinds panic with *KindMismatchError.
//
// Complexity: every operation is O(1) and allocation-free.

package objective

import (
	"cmp"
	"fmt"
	"math"
	"time"
)

// FloatTolerance is the absolute tolerance under which two Float values
// compare equal. It propagates into every ObjectiveValue ordering.
const FloatTolerance = 1e-4

// Kind enumerates BaseValue variants.
type Kind uint8

const (
	// KindZero is the untyped additive identity.
	KindZero Kind = iota
	// KindInteger is a signed 64-bit count.
	KindInteger
	// KindFloat is a real-valued cost.
	KindFloat
	// KindDuration is a non-negative time span.
	KindDuration
	// KindMaximum is the absorbing top element.
	KindMaximum
)

// String returns a short human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindZero:
		return "Zero"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindDuration:
		return "Duration"
	case KindMaximum:
		return "Maximum"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// BaseValue is an immutable scalar. The zero value is Zero().
type BaseValue struct {
	kind Kind
	i    int64
	f    float64
	d    time.Duration
}

// Integer wraps a signed count.
func Integer(v int64) BaseValue { return BaseValue{kind: KindInteger, i: v} }

// Float wraps a real value.
func Float(v float64) BaseValue { return BaseValue{kind: KindFloat, f: v} }

// Duration wraps a time span. Panics with ErrNegativeDuration if d < 0.
func Duration(d time.Duration) BaseValue {
	if d < 0 {
		panic(fmt.Errorf("%w: %v", ErrNegativeDuration, d))
	}
	return BaseValue{kind: KindDuration, d: d}
}

// Maximum returns the absorbing top element.
func Maximum() BaseValue { return BaseValue{kind: KindMaximum} }

// Zero returns the additive identity.
func Zero() BaseValue { return BaseValue{} }

// Kind reports the variant of v.
func (v BaseValue) Kind() Kind { return v.kind }

// IsZero reports whether v is the untyped Zero variant.
func (v BaseValue) IsZero() bool { return v.kind == KindZero }

// IsMaximum reports whether v is Maximum.
func (v BaseValue) IsMaximum() bool { return v.kind == KindMaximum }

// AsInteger returns the integer payload; Zero yields 0. Panics on other kinds.
func (v BaseValue) AsInteger() int64 {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindZero:
		return 0
	}
	panic(&KindMismatchError{Op: "AsInteger", Left: v.kind, Right: KindInteger})
}

// AsFloat returns the float payload; Zero yields 0. Panics on other kinds.
func (v BaseValue) AsFloat() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindZero:
		return 0
	}
	panic(&KindMismatchError{Op: "AsFloat", Left: v.kind, Right: KindFloat})
}

// AsDuration returns the duration payload; Zero yields 0. Panics on other kinds.
func (v BaseValue) AsDuration() time.Duration {
	switch v.kind {
	case KindDuration:
		return v.d
	case KindZero:
		return 0
	}
	panic(&KindMismatchError{Op: "AsDuration", Left: v.kind, Right: KindDuration})
}

// Add returns v + o.
//
// Rules, in order: Maximum on either side yields Maximum; Zero on either side
// yields the other operand; equal kinds add their payloads; anything else panics.
func (v BaseValue) Add(o BaseValue) BaseValue {
	switch {
	case v.kind == KindMaximum || o.kind == KindMaximum:
		return Maximum()
	case v.kind == KindZero:
		return o
	case o.kind == KindZero:
		return v
	case v.kind != o.kind:
		panic(mismatch("Add", v, o))
	}

	switch v.kind {
	case KindInteger:
		return Integer(v.i + o.i)
	case KindFloat:
		return Float(v.f + o.f)
	default: // KindDuration
		return Duration(v.d + o.d)
	}
}

// Sub returns v - o.
//
// Rules, in order: Maximum - x = Maximum; x - Zero = x; x - Maximum panics;
// Zero - Integer/Float negates; Zero - Duration panics unless the duration is 0;
// equal kinds subtract their payloads, with a negative Duration panicking.
func (v BaseValue) Sub(o BaseValue) BaseValue {
	switch {
	case v.kind == KindMaximum:
		return Maximum()
	case o.kind == KindZero:
		return v
	case o.kind == KindMaximum:
		panic(mismatch("Sub", v, o))
	case v.kind == KindZero:
		switch o.kind {
		case KindInteger:
			return Integer(-o.i)
		case KindFloat:
			return Float(-o.f)
		default: // KindDuration
			return Duration(-o.d)
		}
	case v.kind != o.kind:
		panic(mismatch("Sub", v, o))
	}

	switch v.kind {
	case KindInteger:
		return Integer(v.i - o.i)
	case KindFloat:
		return Float(v.f - o.f)
	default: // KindDuration
		return Duration(v.d - o.d)
	}
}

// Compare returns -1, 0 or +1 as v is less than, equal to, or greater than o.
// Floats within FloatTolerance compare equal.
func (v BaseValue) Compare(o BaseValue) int {
	switch {
	case v.kind == KindMaximum && o.kind == KindMaximum:
		return 0
	case v.kind == KindMaximum:
		return 1
	case o.kind == KindMaximum:
		return -1
	case v.kind == KindZero && o.kind == KindZero:
		return 0
	case v.kind == KindZero:
		return typedZero(o.kind).Compare(o)
	case o.kind == KindZero:
		return v.Compare(typedZero(v.kind))
	case v.kind != o.kind:
		panic(mismatch("Compare", v, o))
	}

	switch v.kind {
	case KindInteger:
		return cmp.Compare(v.i, o.i)
	case KindFloat:
		if math.Abs(v.f-o.f) <= FloatTolerance {
			return 0
		}
		return cmp.Compare(v.f, o.f)
	default: // KindDuration
		return cmp.Compare(v.d, o.d)
	}
}

// Equal reports v.Compare(o) == 0.
func (v BaseValue) Equal(o BaseValue) bool { return v.Compare(o) == 0 }

// Less reports v.Compare(o) < 0.
func (v BaseValue) Less(o BaseValue) bool { return v.Compare(o) < 0 }

// String renders Integer as %d, Float as %.2f, Duration via time.Duration,
// Maximum as "MAX" and Zero as "0".
func (v BaseValue) String() string {
	switch v.kind {
	case KindInteger:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%.2f", v.f)
	case KindDuration:
		return v.d.String()
	case KindMaximum:
		return "MAX"
	default:
		return "0"
	}
}

// Diff renders the signed change from prev to v, or "" when nothing changed.
// Maximum on either side renders as "MAX" when the values differ.
func (v BaseValue) Diff(prev BaseValue) string {
	if v.Equal(prev) {
		return ""
	}
	if v.kind == KindMaximum || prev.kind == KindMaximum {
		return "MAX"
	}
	if v.kind == KindDuration || prev.kind == KindDuration {
		a, b := v.AsDuration(), prev.AsDuration()
		if a > b {
			return "+" + (a - b).String()
		}
		return "-" + (b - a).String()
	}
	d := v.Sub(prev)
	switch d.kind {
	case KindInteger:
		return fmt.Sprintf("%+d", d.i)
	case KindFloat:
		return fmt.Sprintf("%+.2f", d.f)
	}
	return ""
}

func typedZero(k Kind) BaseValue {
	switch k {
	case KindInteger:
		return Integer(0)
	case KindFloat:
		return Float(0)
	case KindDuration:
		return Duration(0)
	default:
		return Zero()
	}
}
