// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package identifier holds the generated bounded string types shared
// across Bureau configuration and protocols: user names, host names,
// free-form notes, API tokens. The type declarations live in
// identifiers_gen.go, produced by cmd/boundedgen from
// identifiers.jsonc; edit the definitions and regenerate rather than
// touching the generated file.
package identifier

//go:generate go run github.com/bureau-foundation/bounded/cmd/boundedgen --input identifiers.jsonc --output identifiers_gen.go
