// SPDX-License-Identifier: MIT
// Package: lvsolve/objective
//
// errors.go - sentinel errors and panic payloads for the objective package.
//
// Error policy:
//   • Scalar arithmetic never returns errors. Misuse is a programming error
//     and panics with one of the values below, so callers that recover can
//     still branch with errors.Is / errors.As.

package objective

import (
	"errors"
	"fmt"
)

// ErrKindMismatch indicates that two non-absorbing BaseValues of different
// kinds were combined (e.g., Integer + Duration).
var ErrKindMismatch = errors.New("objective: kind mismatch")

// ErrNegativeDuration indicates that a Duration would become negative.
var ErrNegativeDuration = errors.New("objective: negative duration")

// ErrLengthMismatch indicates that two ObjectiveValues with different level
// counts were combined or compared.
var ErrLengthMismatch = errors.New("objective: level count mismatch")

// ErrNoLevels indicates that an Objective was built without any level.
var ErrNoLevels = errors.New("objective: objective needs at least one level")

// KindMismatchError is the panic payload for operations between incompatible
// kinds. It unwraps to ErrKindMismatch.
type KindMismatchError struct {
	Op    string
	Left  Kind
	Right Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("objective: %s between %s and %s", e.Op, e.Left, e.Right)
}

func (e *KindMismatchError) Unwrap() error { return ErrKindMismatch }

func mismatch(op string, a, b BaseValue) *KindMismatchError {
	return &KindMismatchError{Op: op, Left: a.kind, Right: b.kind}
}
