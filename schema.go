// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded

import (
	"fmt"
	"unicode/utf8"
)

// Bounds is the length configuration of a schema. Min and Max bound
// the logical length (in the schema's [LengthUnit]); Capacity bounds
// the physical byte count of the fixed buffer. Both length bounds are
// inclusive: an empty string is valid exactly when Min is 0.
//
// A schema must satisfy 0 ≤ Min ≤ Max ≤ Capacity. Generated schemas
// (cmd/boundedgen) enforce this before the code compiles; handwritten
// schemas are checked on first use, and a violation panics — it is a
// defect in the program, not bad input.
type Bounds struct {
	Min      int
	Max      int
	Capacity int
}

// Schema carries the compile-time configuration of a bounded string
// type. Implementations are stateless zero-size struct types whose
// methods return constants; the schema travels as a type parameter,
// never as a value inside the string.
type Schema interface {
	Bounds() Bounds
	Length() LengthUnit
	Format() Format
}

// Spiller is the optional capability interface for hybrid storage.
// A schema whose Spill method returns true allows content larger than
// Bounds.Capacity: it is placed in an overflow buffer allocated at
// exactly the content size. Without this capability, oversized content
// fails construction with [ErrCapacityExceeded].
type Spiller interface {
	Spill() bool
}

// Sensitive is the optional capability interface for secret-bearing
// schemas. A sensitive value renders as a BLAKE3 fingerprint in slog
// output instead of its content. The capability changes how the value
// is displayed to observers, never what it stores.
type Sensitive interface {
	Sensitive() bool
}

// LengthUnit selects how logical length is measured. The set is
// closed and dispatched by a plain switch; adding a unit means
// touching this package.
type LengthUnit int

const (
	// UnitBytes measures logical length as the physical byte count. O(1).
	UnitBytes LengthUnit = iota
	// UnitChars measures logical length as the number of Unicode
	// scalar values in the UTF-8 stream. O(n) in bytes.
	UnitChars
)

// Measure returns the logical length of s in this unit. The caller
// must have established that s is valid UTF-8; for UnitChars the
// count of invalid input would be meaningless.
func (u LengthUnit) Measure(s string) int {
	switch u {
	case UnitChars:
		return utf8.RuneCountInString(s)
	default:
		return len(s)
	}
}

// String returns the unit name as used in error messages and the
// boundedgen definition format.
func (u LengthUnit) String() string {
	switch u {
	case UnitChars:
		return "chars"
	default:
		return "bytes"
	}
}

// noun returns the unit's human-readable plural for error messages.
func (u LengthUnit) noun() string {
	switch u {
	case UnitChars:
		return "characters"
	default:
		return "bytes"
	}
}

// bounds returns D's Bounds after checking schema sanity. The check
// runs on every construction; it is a few integer comparisons, and a
// violating handwritten schema must never mint an instance.
//
// Max <= Capacity is required only for fixed storage, where content
// beyond Capacity can never exist. For [Spiller] schemas Capacity is
// the inline threshold, and Max may legitimately exceed it.
func bounds[D Schema]() Bounds {
	var schema D
	b := schema.Bounds()
	if b.Min < 0 || b.Min > b.Max || b.Capacity < 0 {
		panic(fmt.Sprintf("bounded: schema %T has impossible bounds Min=%d Max=%d Capacity=%d (need 0 <= Min <= Max)",
			schema, b.Min, b.Max, b.Capacity))
	}
	if !spills[D]() && b.Max > b.Capacity {
		panic(fmt.Sprintf("bounded: schema %T has Max=%d beyond Capacity=%d without spill storage",
			schema, b.Max, b.Capacity))
	}
	return b
}

// spills reports whether D opted into hybrid overflow storage.
func spills[D Schema]() bool {
	var schema D
	s, ok := any(schema).(Spiller)
	return ok && s.Spill()
}

// sensitive reports whether D opted into secret-bearing rendering.
func sensitive[D Schema]() bool {
	var schema D
	s, ok := any(schema).(Sensitive)
	return ok && s.Sensitive()
}
