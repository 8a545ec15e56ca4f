// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is. Every construction or
// mutation failure unwraps to exactly one of these. None of them is
// retryable: the same input will fail the same way until the caller
// supplies different content.
var (
	// ErrInvalidEncoding: the input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")
	// ErrTooShort: logical length is below the schema minimum.
	ErrTooShort = errors.New("value too short")
	// ErrTooLong: logical length is above the schema maximum.
	ErrTooLong = errors.New("value too long")
	// ErrFormatRejected: the format policy rejected the content.
	ErrFormatRejected = errors.New("format rejected value")
	// ErrCapacityExceeded: the bytes do not fit the fixed buffer and
	// the schema does not allow overflow storage.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// Error is the typed construction/mutation failure. It carries enough
// detail for a caller to report exactly what was violated: the
// measured quantity, the bound it crossed, and for format rejections
// the name of the policy that fired.
type Error struct {
	sentinel error      // one of the Err* values above
	Unit     LengthUnit // unit of Measured/Bound for length errors
	Measured int        // measured logical length, or byte count for capacity errors
	Bound    int        // the violated bound (Min, Max, or Capacity)
	Policy   string     // rejecting policy name, for format errors
}

func (e *Error) Error() string {
	switch e.sentinel {
	case ErrInvalidEncoding:
		return "value is not valid UTF-8"
	case ErrTooShort:
		return fmt.Sprintf("value is %d %s, minimum is %d", e.Measured, e.Unit.noun(), e.Bound)
	case ErrTooLong:
		return fmt.Sprintf("value is %d %s, maximum is %d", e.Measured, e.Unit.noun(), e.Bound)
	case ErrFormatRejected:
		return fmt.Sprintf("format %q rejected the value", e.Policy)
	case ErrCapacityExceeded:
		return fmt.Sprintf("value is %d bytes, buffer capacity is %d", e.Measured, e.Bound)
	default:
		return "invalid value"
	}
}

// Unwrap returns the sentinel, so errors.Is(err, bounded.ErrTooLong)
// and friends work across wrapping.
func (e *Error) Unwrap() error { return e.sentinel }

func errEncoding() *Error {
	return &Error{sentinel: ErrInvalidEncoding}
}

func errTooShort(unit LengthUnit, measured, min int) *Error {
	return &Error{sentinel: ErrTooShort, Unit: unit, Measured: measured, Bound: min}
}

func errTooLong(unit LengthUnit, measured, max int) *Error {
	return &Error{sentinel: ErrTooLong, Unit: unit, Measured: measured, Bound: max}
}

func errFormat(policy string) *Error {
	return &Error{sentinel: ErrFormatRejected, Policy: policy}
}

func errCapacity(byteLen, capacity int) *Error {
	return &Error{sentinel: ErrCapacityExceeded, Measured: byteLen, Bound: capacity}
}
