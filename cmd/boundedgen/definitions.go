// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tidwall/jsonc"
)

// DefinitionFile is the root of a boundedgen definition document.
// Definition files are authored as JSONC (JSON with // comments,
// /* block comments */, and trailing commas), the same convention as
// other authored definition formats in Bureau.
type DefinitionFile struct {
	// Package is the Go package name for the generated file. The
	// --package flag overrides it.
	Package string `json:"package"`

	// Strings holds one entry per generated bounded string type.
	Strings []StringDefinition `json:"strings"`

	// SourceName is the definition file's base name, recorded in the
	// generated header. Set by LoadDefinitions, not by the document.
	SourceName string `json:"-"`
}

// StringDefinition declares one bounded string type.
type StringDefinition struct {
	// Name is the exported Go type name (for example "Username").
	// The generator derives the schema type name ("UsernameSchema"),
	// the constant prefix ("username"), and the parse function name
	// ("ParseUsername") from it.
	Name string `json:"name"`

	// Doc is the type's documentation, phrased to follow "Name is":
	// "a login name, 3-16 ASCII characters". Optional.
	Doc string `json:"doc"`

	// Min and Max bound the logical length, inclusive on both ends.
	// Capacity bounds the physical byte count. The generator enforces
	// 0 <= min <= max <= capacity.
	Min      int `json:"min"`
	Max      int `json:"max"`
	Capacity int `json:"capacity"`

	// Length selects the logical length unit: "bytes" (default) or
	// "chars" (Unicode scalar values).
	Length string `json:"length"`

	// Format selects the content policy: "allow-all" (default),
	// "ascii", or "custom". A custom format refers to a package-level
	// variable the author writes by hand, named after the type
	// ("apiTokenFormat" for "APIToken").
	Format string `json:"format"`

	// Spill allows content larger than Capacity to move to an
	// exact-size overflow buffer (hybrid storage).
	Spill bool `json:"spill"`

	// Sensitive marks the type as secret-bearing: slog output is
	// redacted to a fingerprint.
	Sensitive bool `json:"sensitive"`
}

// LoadDefinitions reads and parses a JSONC definition file.
func LoadDefinitions(path string) (*DefinitionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var file DefinitionFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	file.SourceName = filepath.Base(path)
	return &file, nil
}

// Validate checks the whole definition file. Every problem names the
// definition it belongs to; the first problem wins, matching the
// generator's fail-fast contract.
func (f *DefinitionFile) Validate() error {
	if !isLowerIdentifier(f.Package) {
		return fmt.Errorf("package %q is not a valid lower-case Go package name", f.Package)
	}
	if len(f.Strings) == 0 {
		return fmt.Errorf("definition file contains no strings")
	}

	seen := make(map[string]bool)
	for i := range f.Strings {
		def := &f.Strings[i]
		if err := def.validate(); err != nil {
			return err
		}
		if seen[def.Name] {
			return fmt.Errorf("%s: duplicate definition", def.Name)
		}
		seen[def.Name] = true
	}
	return nil
}

func (d *StringDefinition) validate() error {
	if !isExportedIdentifier(d.Name) {
		return fmt.Errorf("name %q is not an exported Go identifier", d.Name)
	}
	if d.Min < 0 {
		return fmt.Errorf("%s: min %d is negative", d.Name, d.Min)
	}
	if d.Min > d.Max {
		return fmt.Errorf("%s: min %d exceeds max %d", d.Name, d.Min, d.Max)
	}
	if d.Capacity < 0 {
		return fmt.Errorf("%s: capacity %d is negative", d.Name, d.Capacity)
	}
	// For fixed storage, content beyond capacity can never exist, so
	// a max beyond capacity is unsatisfiable. Spill types use
	// capacity as the inline threshold and may exceed it.
	if !d.Spill && d.Max > d.Capacity {
		return fmt.Errorf("%s: max %d exceeds capacity %d (add \"spill\": true for hybrid storage)", d.Name, d.Max, d.Capacity)
	}
	switch d.Length {
	case "", "bytes", "chars":
	default:
		return fmt.Errorf("%s: length %q is not \"bytes\" or \"chars\"", d.Name, d.Length)
	}
	switch d.Format {
	case "", "allow-all", "ascii", "custom":
	default:
		return fmt.Errorf("%s: format %q is not \"allow-all\", \"ascii\", or \"custom\"", d.Name, d.Format)
	}
	return nil
}

// isExportedIdentifier reports whether s is a valid Go identifier
// starting with an upper-case letter.
func isExportedIdentifier(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isLowerIdentifier reports whether s is a valid all-lower-case Go
// identifier, the only package names the generator will emit.
func isLowerIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// constPrefix converts an exported type name to its constant prefix:
// "Username" -> "username", "APIToken" -> "apiToken". A leading run
// of upper-case letters is lowered as a unit, keeping the last letter
// of the run upper when it starts the next word.
func constPrefix(name string) string {
	runes := []rune(name)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	switch {
	case upper == 0:
		return name
	case upper == len(runes):
		return strings.ToLower(name)
	case upper == 1:
		return string(unicode.ToLower(runes[0])) + string(runes[1:])
	default:
		return strings.ToLower(string(runes[:upper-1])) + string(runes[upper-1:])
	}
}
