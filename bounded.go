// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded

import (
	"fmt"
	"unicode/utf8"
)

// Str is a bounded string: UTF-8 text whose logical length and
// content are known to satisfy the schema D. Instances come only from
// [New], [MustNew], or a deserialization hook; there is no unchecked
// path, so any live Str already holds a valid value and callers never
// re-check it.
//
// Str is a small handle over a shared buffer. Copies are cheap and
// alias the same storage: a [Str.Mutate] or [Str.Wipe] through one
// copy is visible through all of them. Concurrent reads are safe;
// concurrent mutation of the same value is not — the caller
// serializes, the type carries no lock.
//
// The zero value is distinguishable with [Str.IsZero], reads as the
// empty string, and fails to marshal. It never claims validity.
type Str[D Schema] struct {
	st *state
}

// state is the single storage representation behind a Str. Exactly
// one of fixed/spill is non-nil for a live value. Bytes beyond n in
// the active buffer are always zero, so a shrink never leaves stale
// content behind in the unused tail.
type state struct {
	fixed   []byte // capacity-sized buffer, allocated once, never resized
	spill   []byte // exact-size overflow buffer (Spiller schemas only)
	n       int    // stored byte count
	logical int    // cached logical length in schema units
	wiped   bool
}

// active returns whichever buffer holds the content, full physical
// extent included.
func (st *state) active() []byte {
	if st.spill != nil {
		return st.spill
	}
	return st.fixed
}

// content returns the stored bytes, exactly n of them, never the
// unused tail. Access after Wipe is a defect and panics.
func (st *state) content() []byte {
	if st.wiped {
		panic("bounded: use of wiped value")
	}
	return st.active()[:st.n]
}

// New validates raw against schema D and returns the bounded string.
// Checks run in a fixed order so error priority is deterministic:
// encoding, then length, then format, then capacity. Each failure
// unwraps to the matching sentinel ([ErrInvalidEncoding],
// [ErrTooShort], [ErrTooLong], [ErrFormatRejected],
// [ErrCapacityExceeded]) and carries the measured value and violated
// bound as an [*Error].
//
// Content larger than Bounds.Capacity is an error unless D implements
// [Spiller], in which case it lands in an exact-size overflow buffer.
func New[D Schema](raw string) (Str[D], error) {
	b := bounds[D]()
	var schema D

	if !utf8.ValidString(raw) {
		return Str[D]{}, errEncoding()
	}

	unit := schema.Length()
	logical := unit.Measure(raw)
	if logical < b.Min {
		return Str[D]{}, errTooShort(unit, logical, b.Min)
	}
	if logical > b.Max {
		return Str[D]{}, errTooLong(unit, logical, b.Max)
	}

	format := schema.Format()
	if !format.Accept(raw) {
		return Str[D]{}, errFormat(reject(format, raw).Name())
	}

	st := &state{n: len(raw), logical: logical}
	switch {
	case len(raw) <= b.Capacity:
		st.fixed = make([]byte, b.Capacity)
		copy(st.fixed, raw)
	case spills[D]():
		st.spill = make([]byte, len(raw))
		copy(st.spill, raw)
	default:
		return Str[D]{}, errCapacity(len(raw), b.Capacity)
	}
	return Str[D]{st: st}, nil
}

// MustNew is New for values known valid at authoring time, such as
// defaults and test fixtures. Panics on any validation failure.
func MustNew[D Schema](raw string) Str[D] {
	s, err := New[D](raw)
	if err != nil {
		panic(fmt.Sprintf("bounded: MustNew(%q): %v", raw, err))
	}
	return s
}

// IsZero reports whether the Str is the zero value (never
// constructed). The zero value holds no content and is not valid.
func (s Str[D]) IsZero() bool { return s.st == nil }

// String returns the exact stored text: no normalization, no
// truncation. The zero value reads as "". Note that converting to
// string copies the bytes onto the Go heap — for sensitive schemas
// prefer [Str.Bytes] at boundaries that accept a byte slice.
func (s Str[D]) String() string {
	if s.st == nil {
		return ""
	}
	return string(s.st.content())
}

// Bytes returns a view over exactly the stored bytes, never the
// unused buffer tail. The slice aliases the value's storage: it is
// valid until the next Mutate or Wipe, and must not be written
// through. Its capacity is clipped, so appending copies rather than
// clobbering the buffer.
func (s Str[D]) Bytes() []byte {
	if s.st == nil {
		return nil
	}
	content := s.st.content()
	return content[:len(content):len(content)]
}

// Len returns the stored physical byte count.
func (s Str[D]) Len() int {
	if s.st == nil {
		return 0
	}
	if s.st.wiped {
		panic("bounded: use of wiped value")
	}
	return s.st.n
}

// LenLogical returns the logical length in the schema's unit: equal
// to Len for byte-counted schemas, the Unicode scalar value count for
// character-counted ones. Cached at construction, O(1).
func (s Str[D]) LenLogical() int {
	if s.st == nil {
		return 0
	}
	if s.st.wiped {
		panic("bounded: use of wiped value")
	}
	return s.st.logical
}
