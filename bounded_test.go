// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/bounded"
)

func TestNewBoundaries(t *testing.T) {
	// codeSchema: 3 to 5 bytes, capacity 5.
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "below-min", input: "ab", want: bounded.ErrTooShort},
		{name: "at-min", input: "abc"},
		{name: "inside", input: "abcd"},
		{name: "at-max", input: "abcde"},
		{name: "above-max", input: "abcdef", want: bounded.ErrTooLong},
		{name: "empty", input: "", want: bounded.ErrTooShort},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := bounded.New[codeSchema](test.input)
			if test.want != nil {
				if !errors.Is(err, test.want) {
					t.Fatalf("New(%q): err=%v, want %v", test.input, err, test.want)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q): %v", test.input, err)
			}
			if got := value.String(); got != test.input {
				t.Errorf("String() = %q, want %q", got, test.input)
			}
		})
	}
}

func TestNewInvalidEncoding(t *testing.T) {
	_, err := bounded.New[codeSchema]("ab\xff")
	if !errors.Is(err, bounded.ErrInvalidEncoding) {
		t.Fatalf("err=%v, want ErrInvalidEncoding", err)
	}
}

// Encoding is checked before length: a too-short invalid byte string
// reports the encoding problem, not the length.
func TestNewErrorOrder(t *testing.T) {
	_, err := bounded.New[codeSchema]("\xff")
	if !errors.Is(err, bounded.ErrInvalidEncoding) {
		t.Fatalf("err=%v, want ErrInvalidEncoding before ErrTooShort", err)
	}

	// Length is checked before format: a 9-byte non-ASCII input against
	// asciiSchema (max 8) reports length, not format.
	_, err = bounded.New[asciiSchema]("ééééé") // 5 chars, 10 bytes
	if !errors.Is(err, bounded.ErrTooLong) {
		t.Fatalf("err=%v, want ErrTooLong before ErrFormatRejected", err)
	}
}

func TestNewFormatRejected(t *testing.T) {
	_, err := bounded.New[asciiSchema]("héllo")
	if !errors.Is(err, bounded.ErrFormatRejected) {
		t.Fatalf("err=%v, want ErrFormatRejected", err)
	}

	var typed *bounded.Error
	if !errors.As(err, &typed) {
		t.Fatalf("err is %T, want *bounded.Error", err)
	}
	if typed.Policy != "ascii" {
		t.Errorf("Policy = %q, want %q", typed.Policy, "ascii")
	}
}

func TestNewErrorDetail(t *testing.T) {
	_, err := bounded.New[codeSchema]("ab")
	var typed *bounded.Error
	if !errors.As(err, &typed) {
		t.Fatalf("err is %T, want *bounded.Error", err)
	}
	if typed.Measured != 2 || typed.Bound != 3 {
		t.Errorf("Measured=%d Bound=%d, want 2 and 3", typed.Measured, typed.Bound)
	}
	if !strings.Contains(err.Error(), "minimum is 3") {
		t.Errorf("message %q does not name the bound", err.Error())
	}

	_, err = bounded.New[codeSchema]("abcdef")
	if !errors.As(err, &typed) {
		t.Fatalf("err is %T, want *bounded.Error", err)
	}
	if typed.Measured != 6 || typed.Bound != 5 {
		t.Errorf("Measured=%d Bound=%d, want 6 and 5", typed.Measured, typed.Bound)
	}
}

func TestCharCountedLength(t *testing.T) {
	// Each emoji is one character but four bytes.
	value, err := bounded.New[charSchema]("😀😀")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := value.LenLogical(); got != 2 {
		t.Errorf("LenLogical() = %d, want 2", got)
	}
	if got := value.Len(); got != 8 {
		t.Errorf("Len() = %d, want 8", got)
	}

	// Four characters exceed the max of three.
	if _, err := bounded.New[charSchema]("abcd"); !errors.Is(err, bounded.ErrTooLong) {
		t.Errorf("four chars: err=%v, want ErrTooLong", err)
	}

	// Three 4-byte characters fit the 12-byte capacity exactly.
	if _, err := bounded.New[charSchema]("😀😀😀"); err != nil {
		t.Errorf("three emoji: %v", err)
	}
}

// A character-counted schema can accept a logical length within bounds
// whose byte encoding exceeds the fixed capacity.
func TestCapacityExceeded(t *testing.T) {
	// tight: max 3 chars, capacity 4 bytes — fine for ASCII, not for
	// multi-byte content.
	_, err := bounded.New[tightSchema]("😀😀")
	if !errors.Is(err, bounded.ErrCapacityExceeded) {
		t.Fatalf("err=%v, want ErrCapacityExceeded", err)
	}

	var typed *bounded.Error
	if !errors.As(err, &typed) {
		t.Fatalf("err is %T, want *bounded.Error", err)
	}
	if typed.Measured != 8 || typed.Bound != 4 {
		t.Errorf("Measured=%d Bound=%d, want 8 and 4", typed.Measured, typed.Bound)
	}
}

type tightSchema struct{}

func (tightSchema) Bounds() bounded.Bounds     { return bounded.Bounds{Min: 0, Max: 3, Capacity: 4} }
func (tightSchema) Length() bounded.LengthUnit { return bounded.UnitChars }
func (tightSchema) Format() bounded.Format     { return bounded.AllowAll }

func TestSpillStorage(t *testing.T) {
	long := strings.Repeat("x", 40)
	value, err := bounded.New[spillSchema](long)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := value.String(); got != long {
		t.Errorf("String() = %q, want the original", got)
	}
	if got := value.Len(); got != 40 {
		t.Errorf("Len() = %d, want 40", got)
	}

	// Short content stays inline and still round-trips.
	short, err := bounded.New[spillSchema]("hi")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := short.String(); got != "hi" {
		t.Errorf("String() = %q, want %q", got, "hi")
	}

	// The max still binds, spill or not.
	if _, err := bounded.New[spillSchema](strings.Repeat("x", 65)); !errors.Is(err, bounded.ErrTooLong) {
		t.Errorf("65 chars: err=%v, want ErrTooLong", err)
	}
}

func TestRoundTripExact(t *testing.T) {
	// No normalization: mixed scripts, combining marks, and leading or
	// trailing spaces come back byte for byte.
	inputs := []string{"abc", " ab ", "ábc", "日本語", "a\tb"}
	for _, input := range inputs {
		value, err := bounded.New[spillSchema](input)
		if err != nil {
			t.Fatalf("New(%q): %v", input, err)
		}
		if got := value.String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}
}

// pinSchema: 3 to 5 bytes of ASCII in a 5-byte buffer, the classic
// short-code shape.
type pinSchema struct{}

func (pinSchema) Bounds() bounded.Bounds     { return bounded.Bounds{Min: 3, Max: 5, Capacity: 5} }
func (pinSchema) Length() bounded.LengthUnit { return bounded.UnitBytes }
func (pinSchema) Format() bounded.Format     { return bounded.ASCII }

func TestShortCodeSchema(t *testing.T) {
	if _, err := bounded.New[pinSchema]("ab"); !errors.Is(err, bounded.ErrTooShort) {
		t.Errorf("New(\"ab\"): err=%v, want ErrTooShort", err)
	}
	if _, err := bounded.New[pinSchema]("abcdef"); !errors.Is(err, bounded.ErrTooLong) {
		t.Errorf("New(\"abcdef\"): err=%v, want ErrTooLong", err)
	}
	// "abç" is 4 bytes, inside the length bounds, but ç is not ASCII.
	if _, err := bounded.New[pinSchema]("abç"); !errors.Is(err, bounded.ErrFormatRejected) {
		t.Errorf("New(\"abç\"): err=%v, want ErrFormatRejected", err)
	}

	value, err := bounded.New[pinSchema]("abc")
	if err != nil {
		t.Fatalf("New(\"abc\"): %v", err)
	}
	if value.String() != "abc" || value.Len() != 3 {
		t.Errorf("got %q (%d bytes), want %q (3 bytes)", value, value.Len(), "abc")
	}
}

func TestZeroValue(t *testing.T) {
	var zero code
	if !zero.IsZero() {
		t.Error("IsZero() = false for zero value")
	}
	if zero.String() != "" {
		t.Errorf("String() = %q, want empty", zero.String())
	}
	if zero.Bytes() != nil {
		t.Errorf("Bytes() = %v, want nil", zero.Bytes())
	}
	if zero.Len() != 0 || zero.LenLogical() != 0 {
		t.Errorf("Len()=%d LenLogical()=%d, want 0 and 0", zero.Len(), zero.LenLogical())
	}

	constructed := bounded.MustNew[codeSchema]("abc")
	if constructed.IsZero() {
		t.Error("IsZero() = true for constructed value")
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid input")
		}
	}()
	bounded.MustNew[codeSchema]("x")
}

func TestBytesIsClipped(t *testing.T) {
	value := bounded.MustNew[codeSchema]("abc")
	view := value.Bytes()
	if string(view) != "abc" {
		t.Fatalf("Bytes() = %q, want %q", view, "abc")
	}

	// Appending to the view must not write into the value's buffer.
	_ = append(view, 'X')
	if got := value.String(); got != "abc" {
		t.Errorf("append through Bytes() corrupted the value: %q", got)
	}
}

func TestCopiesShareStorage(t *testing.T) {
	original := bounded.MustNew[codeSchema]("abc")
	copied := original

	if err := copied.Mutate(func(buf []byte) int {
		copy(buf, "xyz")
		return 3
	}); err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if got := original.String(); got != "xyz" {
		t.Errorf("original sees %q after mutating the copy, want %q", got, "xyz")
	}
}
