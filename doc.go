// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bounded provides string value types that are valid by
// construction: every live instance is known to hold UTF-8 text whose
// logical length falls inside a schema-defined range and whose content
// passes a schema-defined format policy. Code that receives a bounded
// string never re-validates it — the only way to obtain one is through
// the validating constructor or a deserialization hook that calls it.
//
// A bounded string type is declared by a schema: a stateless, zero-size
// type carrying the configuration (minimum and maximum logical length,
// byte capacity, length unit, format policy) as constants. The schema
// is a type parameter, so two bounded types with different schemas are
// different Go types and cannot be mixed up at compile time:
//
//	type UsernameSchema struct{}
//
//	func (UsernameSchema) Bounds() bounded.Bounds {
//		return bounded.Bounds{Min: 3, Max: 16, Capacity: 64}
//	}
//	func (UsernameSchema) Length() bounded.LengthUnit { return bounded.UnitChars }
//	func (UsernameSchema) Format() bounded.Format     { return bounded.ASCII }
//
//	type Username = bounded.Str[UsernameSchema]
//
//	name, err := bounded.New[UsernameSchema]("alice")
//
// Schemas are usually not written by hand: cmd/boundedgen generates
// them from a JSONC definition file and rejects impossible bound
// configurations (Min > Max, or Max > Capacity without spill
// storage) before the code exists,
// so a bad configuration is a build failure rather than a runtime one.
// Package identifier holds the generated types used across Bureau.
//
// Storage is a fixed buffer of exactly Capacity bytes, allocated once
// and never resized. Schemas that implement [Spiller] opt into hybrid
// storage: content larger than Capacity moves to an exact-size
// overflow buffer transparently. Content never moves back after a
// shrinking mutation — storage mode is deterministic, not
// size-dependent over time.
//
// Mutation is transactional: [Str.Mutate] hands the caller the raw
// buffer, then re-validates the result and rolls back to the previous
// bytes if the edit broke the schema. Sensitive values get
// [Str.Wipe] (zero the buffer, then fail loudly on later access),
// [Str.ConstantTimeEqual], and redacted slog output; for secrets that
// must never touch the Go heap, [NewLocked] stores validated content
// in an mlock-backed buffer from package secretbuf.
package bounded
