// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
	"unsafe"

	"github.com/bureau-foundation/bounded/secretbuf"
)

// Locked is a schema-validated secret string stored in locked memory:
// the content passed the same checks as [New] and then moved into a
// secretbuf.Buffer — mmap'd outside the Go heap, mlock'd against
// swap, excluded from core dumps, zeroed on Close. Use it for tokens,
// passphrases, and keys that happen to be text with a known shape.
//
// Locked is deliberately narrower than [Str]: no String method (a
// string conversion is an uncontrolled heap copy), no Mutate (secrets
// are replaced, not edited), comparison only in constant time. It
// must not be copied after creation; pass the pointer.
type Locked[D Schema] struct {
	buffer  *secretbuf.Buffer
	logical int
}

// NewLocked validates source against schema D and moves it into a
// locked buffer, zeroing source on success — after the call the
// caller's slice no longer holds the secret. Validation failures
// leave source untouched and return the same [*Error] kinds as [New],
// in the same order: encoding, length, format, capacity.
//
// The capacity rule matches [New]: content beyond Bounds.Capacity
// needs the [Spiller] capability, otherwise [ErrCapacityExceeded].
// (Locked storage is a single exact-size region either way; the rule
// keeps a schema's acceptance set identical across storage backends.)
//
// Empty source is rejected even when the schema's Min is 0: a locked
// region holds at least one byte, and an empty secret has nothing to
// protect. This is the one place the locked acceptance set is
// narrower than [New]'s.
//
// The caller must Close the result when the secret's life ends.
func NewLocked[D Schema](source []byte) (*Locked[D], error) {
	b := bounds[D]()
	var schema D

	if !utf8.Valid(source) {
		return nil, errEncoding()
	}
	// Zero-copy read-only view: validating a secret must not spray
	// copies of it across the heap. The view is only valid for this
	// call; Accept implementations must not retain their argument.
	text := view(source)

	unit := schema.Length()
	logical := unit.Measure(text)
	if logical < b.Min {
		return nil, errTooShort(unit, logical, b.Min)
	}
	if logical > b.Max {
		return nil, errTooLong(unit, logical, b.Max)
	}

	format := schema.Format()
	if !format.Accept(text) {
		return nil, errFormat(reject(format, text).Name())
	}

	if len(source) > b.Capacity && !spills[D]() {
		return nil, errCapacity(len(source), b.Capacity)
	}
	if len(source) == 0 {
		return nil, fmt.Errorf("bounded: empty secret cannot be locked")
	}

	buffer, err := secretbuf.NewFromBytes(source)
	if err != nil {
		return nil, err
	}
	return &Locked[D]{buffer: buffer, logical: logical}, nil
}

// Bytes returns the secret bytes, pointing into the locked region.
// Do not retain the slice past the value's life and do not convert it
// to a string away from an API boundary that demands one. Panics
// after Close.
func (l *Locked[D]) Bytes() []byte { return l.buffer.Bytes() }

// Len returns the physical byte count.
func (l *Locked[D]) Len() int { return l.buffer.Len() }

// LenLogical returns the logical length in the schema's unit,
// measured at construction.
func (l *Locked[D]) LenLogical() int { return l.logical }

// ConstantTimeEqual reports whether two locked values hold identical
// bytes, without revealing through timing where they differ. Byte
// count equality gates the comparison up front; this design treats
// length as non-secret. Panics if either side is closed.
func (l *Locked[D]) ConstantTimeEqual(other *Locked[D]) bool {
	return constantTimeBytesEqual(l.buffer.Bytes(), other.buffer.Bytes())
}

// ConstantTimeEqualBytes compares the secret against raw candidate
// bytes, such as a value arriving on the wire, in constant time.
func (l *Locked[D]) ConstantTimeEqualBytes(candidate []byte) bool {
	return constantTimeBytesEqual(l.buffer.Bytes(), candidate)
}

// Fingerprint returns the same keyed BLAKE3 short digest as
// [Str.Fingerprint], for correlating the secret in logs.
func (l *Locked[D]) Fingerprint() string { return fingerprint(l.buffer.Bytes()) }

// LogValue implements slog.LogValuer: locked values always log as a
// fingerprint, regardless of whether the schema is [Sensitive] —
// locked memory exists precisely because the content is secret.
func (l *Locked[D]) LogValue() slog.Value {
	return slog.StringValue("blake3:" + l.Fingerprint())
}

// Close zeroes the locked region and releases it. Idempotent; reads
// after Close panic.
func (l *Locked[D]) Close() error { return l.buffer.Close() }

// view returns a string reading data in place, without copying.
func view(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return unsafe.String(&data[0], len(data))
}
