// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// bounded string types.
//
// A bounded value serializes as a CBOR text string through its
// MarshalText hook and deserializes through UnmarshalText — which
// calls the validating constructor, so decoding a document cannot
// produce an out-of-bounds value and no validate-after-decode step
// exists. The fxamacker/cbor defaults would instead serialize the
// struct's unexported storage as an empty map, silently losing the
// content; the modes here bridge text-marshaling types to CBOR text
// strings in both directions.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. Same logical data always produces identical bytes, which
// keeps encoded bounded values usable as cache and dedup keys.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
package codec
