// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler for JSON, CBOR (via
// the codec package's text-string bridging), and other text-based
// formats. The zero value refuses to marshal: it holds no validated
// content and must not silently serialize as an empty string.
func (s Str[D]) MarshalText() ([]byte, error) {
	if s.st == nil {
		return nil, fmt.Errorf("bounded: marshaling zero value")
	}
	content := s.st.content()
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. This is the
// deserialization entry point: the textual value goes through [New],
// so a field populated by encoding/json or CBOR decoding is valid the
// moment it exists — there is no separate validate-after-decode step,
// and no path that skips validation. A schema violation surfaces as
// the decoder's field error, wrapping the [*Error] kind.
func (s *Str[D]) UnmarshalText(data []byte) error {
	parsed, err := New[D](string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler. yaml.v3 does not consult
// encoding.TextMarshaler, so the hook is spelled out for bounded
// fields in YAML configuration files.
func (s Str[D]) MarshalYAML() (any, error) {
	if s.st == nil {
		return nil, fmt.Errorf("bounded: marshaling zero value")
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler: the same parse-don't-
// validate entry as UnmarshalText, surfaced as a node-level error
// with the document position attached.
func (s *Str[D]) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := New[D](raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = parsed
	return nil
}
