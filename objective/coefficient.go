// SPDX-License-Identifier: MIT
// Package: lvsolve/objective
//
// coefficient.go - integer or float weights applied to a BaseValue.

package objective

import (
	"fmt"
	"math"
	"time"
)

// Coefficient is a weight for one indicator inside a Level.
// The zero value is the integer coefficient 0.
type Coefficient struct {
	isFloat bool
	i       int32
	f       float32
}

// IntCoefficient returns an integer weight.
func IntCoefficient(c int32) Coefficient { return Coefficient{i: c} }

// FloatCoefficient returns a float weight.
func FloatCoefficient(c float32) Coefficient { return Coefficient{isFloat: true, f: c} }

// One is the neutral weight.
func One() Coefficient { return IntCoefficient(1) }

// IsOne reports whether c leaves every value unchanged.
func (c Coefficient) IsOne() bool {
	if c.isFloat {
		return c.f == 1
	}
	return c.i == 1
}

// Scale multiplies v by c.
//
// Integer weights keep the kind of v. Float weights applied to an Integer or a
// Duration truncate toward zero. Maximum and Zero are returned unchanged.
// A negative Duration result panics with ErrNegativeDuration.
func (c Coefficient) Scale(v BaseValue) BaseValue {
	switch v.kind {
	case KindMaximum, KindZero:
		return v
	}

	if !c.isFloat {
		k := int64(c.i)
		switch v.kind {
		case KindInteger:
			return Integer(k * v.i)
		case KindFloat:
			return Float(float64(c.i) * v.f)
		default:
			return Duration(time.Duration(k) * v.d)
		}
	}

	f := float64(c.f)
	switch v.kind {
	case KindInteger:
		return Integer(int64(math.Trunc(f * float64(v.i))))
	case KindFloat:
		return Float(f * v.f)
	default:
		return Duration(time.Duration(math.Trunc(f * float64(v.d))))
	}
}

// String renders the weight without trailing zeros.
func (c Coefficient) String() string {
	if c.isFloat {
		return fmt.Sprintf("%g", c.f)
	}
	return fmt.Sprintf("%d", c.i)
}
