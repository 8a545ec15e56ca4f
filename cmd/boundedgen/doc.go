// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// boundedgen generates bounded string type declarations from a JSONC
// definition file.
//
// Each definition names a string type with its bounds (min, max,
// capacity), length unit, format policy, and optional capabilities
// (spill, sensitive). The generator emits, per definition: the bound
// constants, a zero-size schema type, a type alias over bounded.Str,
// and a Parse function. Generation refuses definitions whose bounds
// cannot hold (min > max, max > capacity, negative min), and the
// emitted constants carry a compile-time guard that fails the build
// if they are ever hand-edited into the same impossible order — a bad
// bound configuration is a build failure, never a runtime one.
//
// Usage:
//
//	boundedgen --input identifiers.jsonc --output identifiers_gen.go [--package name]
//	boundedgen --input identifiers.jsonc --check
//
// Typically invoked from a go:generate directive in the package that
// owns the definitions:
//
//	//go:generate go run github.com/bureau-foundation/bounded/cmd/boundedgen --input identifiers.jsonc --output identifiers_gen.go
package main
