// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded

import "strings"

// Format is a content acceptance policy, evaluated once over the full
// candidate string during construction and after every mutation. A
// format never sees invalid UTF-8 (encoding is checked first) and
// must be a pure function of its input: stateless, no side effects.
//
// The built-in policies are [AllowAll] and [ASCII]. Custom policies
// come from [NewFormat]; several policies compose by conjunction with
// [Conjunction].
type Format interface {
	// Name identifies the policy in rejection errors, so a caller
	// reading "format \"token\" rejected the value" knows which rule
	// fired.
	Name() string
	// Accept reports whether the content is allowed.
	Accept(s string) bool
}

// AllowAll accepts any valid UTF-8 content.
var AllowAll Format = allowAll{}

// ASCII accepts content whose every byte is in the 0–127 range.
var ASCII Format = asciiOnly{}

type allowAll struct{}

func (allowAll) Name() string       { return "allow-all" }
func (allowAll) Accept(string) bool { return true }

type asciiOnly struct{}

func (asciiOnly) Name() string { return "ascii" }

func (asciiOnly) Accept(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// NewFormat wraps an acceptance function as a named Format.
func NewFormat(name string, accept func(s string) bool) Format {
	return formatFunc{name: name, accept: accept}
}

type formatFunc struct {
	name   string
	accept func(string) bool
}

func (f formatFunc) Name() string         { return f.name }
func (f formatFunc) Accept(s string) bool { return f.accept(s) }

// Conjunction composes formats: content is accepted only when every
// member accepts it. Members are evaluated in order and evaluation
// stops at the first rejection; the rejection error names the member
// that fired, not the conjunction.
type Conjunction []Format

// Name joins the member names with '+'.
func (c Conjunction) Name() string {
	names := make([]string, len(c))
	for i, f := range c {
		names[i] = f.Name()
	}
	return strings.Join(names, "+")
}

// Accept reports whether every member accepts s.
func (c Conjunction) Accept(s string) bool {
	for _, f := range c {
		if !f.Accept(s) {
			return false
		}
	}
	return true
}

// reject returns the member that rejects s, unwrapping nested
// conjunctions, so rejection errors always carry the most specific
// policy name. Falls back to f itself when f accepts s.
func reject(f Format, s string) Format {
	c, ok := f.(Conjunction)
	if !ok {
		return f
	}
	for _, member := range c {
		if !member.Accept(s) {
			return reject(member, s)
		}
	}
	return f
}
