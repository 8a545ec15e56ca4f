// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/bounded"
	"github.com/bureau-foundation/bounded/codec"
	"github.com/bureau-foundation/bounded/identifier"
)

func TestRoundTripBoundedFields(t *testing.T) {
	type record struct {
		User identifier.Username `cbor:"user"`
		Host identifier.Hostname `cbor:"host"`
	}

	original := record{
		User: bounded.MustNew[identifier.UsernameSchema]("alice"),
		Host: bounded.MustNew[identifier.HostnameSchema]("bureau.local"),
	}

	data, err := codec.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded record
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.User.Equal(original.User) {
		t.Errorf("User round-trip: got %q, want %q", decoded.User, original.User)
	}
	if !decoded.Host.Equal(original.Host) {
		t.Errorf("Host round-trip: got %q, want %q", decoded.Host, original.Host)
	}
}

// Bounded values must appear on the wire as plain CBOR text strings,
// not as maps or tagged structures.
func TestEncodesAsTextString(t *testing.T) {
	user := bounded.MustNew[identifier.UsernameSchema]("alice")
	data, err := codec.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// Major type 3 (text string), length 5, then "alice".
	want := append([]byte{0x65}, "alice"...)
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal = %x, want %x", data, want)
	}

	// A plain string decodes into the bounded type.
	var decoded identifier.Username
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.String() != "alice" {
		t.Errorf("decoded = %q, want %q", decoded, "alice")
	}
}

// Decoding routes through the validating constructor: a wire value
// violating the schema fails the Unmarshal.
func TestDecodeValidates(t *testing.T) {
	// "ab" is below the Username minimum of 3 characters.
	data, err := codec.Marshal("ab")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded identifier.Username
	err = codec.Unmarshal(data, &decoded)
	if err == nil {
		t.Fatal("Unmarshal accepted a value below the schema minimum")
	}
	if !errors.Is(err, bounded.ErrTooShort) && !strings.Contains(err.Error(), "minimum is 3") {
		t.Fatalf("Unmarshal: err=%v, want a too-short rejection", err)
	}
}

func TestDeterministicEncoding(t *testing.T) {
	value := map[string]int{"b": 2, "a": 1, "c": 3}

	first, err := codec.Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := codec.Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("encoding is not deterministic: %x vs %x", first, second)
	}
}

func TestStreamEncoderDecoder(t *testing.T) {
	var stream bytes.Buffer
	encoder := codec.NewEncoder(&stream)

	values := []string{"alice", "bob", "carol"}
	for _, name := range values {
		user := bounded.MustNew[identifier.UsernameSchema](name)
		if err := encoder.Encode(user); err != nil {
			t.Fatalf("Encode(%q): %v", name, err)
		}
	}

	decoder := codec.NewDecoder(&stream)
	for _, want := range values {
		var user identifier.Username
		if err := decoder.Decode(&user); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if user.String() != want {
			t.Errorf("decoded %q, want %q", user, want)
		}
	}
}

func TestUnmarshalIntoAny(t *testing.T) {
	data, err := codec.Marshal(map[string]any{"name": "alice"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded any
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	asMap, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded is %T, want map[string]any", decoded)
	}
	if asMap["name"] != "alice" {
		t.Errorf("name = %v, want %q", asMap["name"], "alice")
	}
}
