// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded

import "log/slog"

// LogValue implements slog.LogValuer. Ordinary values log their text.
// Schemas that implement [Sensitive] log a keyed BLAKE3 fingerprint
// instead, so a log line can correlate occurrences of the same secret
// without ever containing it. Wiped and zero values log as markers
// rather than panicking — emitting a record about a dead value is
// legitimate, reading its content is not.
func (s Str[D]) LogValue() slog.Value {
	if s.st == nil {
		return slog.StringValue("<zero>")
	}
	if s.st.wiped {
		return slog.StringValue("<wiped>")
	}
	if sensitive[D]() {
		return slog.StringValue("blake3:" + fingerprint(s.st.content()))
	}
	return slog.StringValue(s.String())
}
