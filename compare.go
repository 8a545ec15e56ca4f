// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// fingerprintKey is the BLAKE3 keyed-hash domain key for value
// fingerprints. The bytes are the ASCII domain name zero-padded to 32
// bytes, readable in hex dumps without weakening the keyed mode.
// Changing it changes every fingerprint ever logged.
var fingerprintKey = [32]byte{
	'b', 'u', 'r', 'e', 'a', 'u', '.', 'b', 'o', 'u', 'n', 'd', 'e', 'd', '.',
	'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r', 'i', 'n', 't', 0, 0, 0, 0, 0, 0,
}

// Equal reports whether two values hold identical text. Ordinary
// variable-time comparison — use [Str.ConstantTimeEqual] when either
// side may be secret. Zero values equal only other zero values.
func (s Str[D]) Equal(other Str[D]) bool {
	if s.st == nil || other.st == nil {
		return s.st == nil && other.st == nil
	}
	return string(s.st.content()) == string(other.st.content())
}

// ConstantTimeEqual reports whether two values hold identical content
// bytes, in time independent of where the first difference sits. The
// content length gates the comparison up front: length is treated as
// non-secret (the deliberate length-not-secret trade-off; content
// bytes are the protected quantity), and the byte loop itself never
// short-circuits. The verdict depends only on the content, never on
// the storage mode or the physical buffer size — a spilled value that
// shrank still equals a fresh value with the same text. Zero values
// compare equal only to zero values.
func (s Str[D]) ConstantTimeEqual(other Str[D]) bool {
	if s.st == nil || other.st == nil {
		return s.st == nil && other.st == nil
	}
	if s.st.wiped || other.st.wiped {
		panic("bounded: use of wiped value")
	}
	return constantTimeBytesEqual(s.st.content(), other.st.content())
}

// Fingerprint returns a short stable identifier for the content: the
// first 8 bytes of a domain-keyed BLAKE3 digest, hex encoded. Safe to
// log and to compare for diagnostics; it never reveals the content.
// The zero value fingerprints as "".
func (s Str[D]) Fingerprint() string {
	if s.st == nil {
		return ""
	}
	return fingerprint(s.st.content())
}

// constantTimeBytesEqual is the shared byte comparison behind every
// constant-time verdict: equal-length gate (length is not secret),
// then a full constant-time sweep.
func constantTimeBytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

func fingerprint(content []byte) string {
	// NewKeyed fails only on a wrong key length, which the fixed-size
	// array rules out.
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		panic("bounded: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(content)
	return hex.EncodeToString(hasher.Sum(nil)[:8])
}
