// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded

import (
	"fmt"
	"unicode/utf8"
)

// Mutate edits the value in place, transactionally. The closure
// receives the full physical buffer — Capacity bytes for fixed
// storage, the overflow size for spilled values — with the current
// content in its leading bytes, and returns the byte length of the
// content after its edits. When the closure returns, the edited range
// is re-validated against the schema: UTF-8 encoding, logical length
// bounds, format policy. On success the new length is committed and
// the unused tail is zeroed. On any violation the previous bytes are
// restored exactly and the validation error is returned — no caller
// ever observes an invalid committed state, even if the closure
// panics.
//
// The returned length must be in [0, len(buffer)]; anything else is a
// defect in the closure and panics. Storage never demotes: a value
// that spilled past Capacity keeps its overflow buffer even when the
// new content would fit inline, so mutation cost is deterministic.
//
// Mutating the zero value or a wiped value is a defect and panics.
// Concurrent Mutate calls on copies of the same value must be
// serialized by the caller.
func (s Str[D]) Mutate(edit func(buf []byte) int) error {
	if s.st == nil {
		panic("bounded: Mutate on zero value")
	}
	if s.st.wiped {
		panic("bounded: use of wiped value")
	}

	buf := s.st.active()
	previous := make([]byte, len(buf))
	copy(previous, buf)
	previousN := s.st.n

	restore := func() {
		copy(buf, previous)
		s.st.n = previousN
		zero(previous)
	}

	// A panic inside the closure must not leave half-edited bytes
	// behind: restore, then let the panic continue.
	defer func() {
		if r := recover(); r != nil {
			restore()
			panic(r)
		}
	}()

	newLen := edit(buf)
	if newLen < 0 || newLen > len(buf) {
		panic(fmt.Sprintf("bounded: Mutate returned length %d outside buffer of %d bytes", newLen, len(buf)))
	}

	if err := s.revalidate(buf[:newLen]); err != nil {
		restore()
		return err
	}

	var schema D
	s.st.n = newLen
	s.st.logical = schema.Length().Measure(string(buf[:newLen]))
	zero(buf[newLen:])
	zero(previous)
	return nil
}

// revalidate reruns the content checks of [New] — encoding, length,
// format — over an edited byte range. Capacity needs no recheck: the
// edit happened inside the existing buffer.
func (s Str[D]) revalidate(content []byte) error {
	var schema D
	b := bounds[D]()

	if !utf8.Valid(content) {
		return errEncoding()
	}
	text := string(content)

	unit := schema.Length()
	logical := unit.Measure(text)
	if logical < b.Min {
		return errTooShort(unit, logical, b.Min)
	}
	if logical > b.Max {
		return errTooLong(unit, logical, b.Max)
	}

	format := schema.Format()
	if !format.Accept(text) {
		return errFormat(reject(format, text).Name())
	}
	return nil
}
