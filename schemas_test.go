// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded_test

import (
	"github.com/bureau-foundation/bounded"
)

// codeSchema: 3 to 5 bytes of ASCII in a 5-byte fixed buffer. The
// smallest interesting schema; most boundary tests use it.
type codeSchema struct{}

func (codeSchema) Bounds() bounded.Bounds     { return bounded.Bounds{Min: 3, Max: 5, Capacity: 5} }
func (codeSchema) Length() bounded.LengthUnit { return bounded.UnitBytes }
func (codeSchema) Format() bounded.Format     { return bounded.AllowAll }

type code = bounded.Str[codeSchema]

// asciiSchema: like codeSchema but with the ASCII format policy, for
// format-rejection tests.
type asciiSchema struct{}

func (asciiSchema) Bounds() bounded.Bounds     { return bounded.Bounds{Min: 1, Max: 8, Capacity: 8} }
func (asciiSchema) Length() bounded.LengthUnit { return bounded.UnitBytes }
func (asciiSchema) Format() bounded.Format     { return bounded.ASCII }

// charSchema counts characters, not bytes: 1 to 3 Unicode scalar
// values in a 12-byte buffer, so a single character may take 4 bytes.
type charSchema struct{}

func (charSchema) Bounds() bounded.Bounds     { return bounded.Bounds{Min: 1, Max: 3, Capacity: 12} }
func (charSchema) Length() bounded.LengthUnit { return bounded.UnitChars }
func (charSchema) Format() bounded.Format     { return bounded.AllowAll }

// spillSchema: up to 64 characters with only 8 inline bytes, so
// anything longer than 8 bytes moves to an exact-size overflow buffer.
type spillSchema struct{}

func (spillSchema) Bounds() bounded.Bounds     { return bounded.Bounds{Min: 0, Max: 64, Capacity: 8} }
func (spillSchema) Length() bounded.LengthUnit { return bounded.UnitChars }
func (spillSchema) Format() bounded.Format     { return bounded.AllowAll }
func (spillSchema) Spill() bool                { return true }

// secretSchema: sensitive byte-counted content, redacted in logs.
type secretSchema struct{}

func (secretSchema) Bounds() bounded.Bounds     { return bounded.Bounds{Min: 4, Max: 32, Capacity: 32} }
func (secretSchema) Length() bounded.LengthUnit { return bounded.UnitBytes }
func (secretSchema) Format() bounded.Format     { return bounded.ASCII }
func (secretSchema) Sensitive() bool            { return true }
