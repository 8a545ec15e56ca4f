// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package identifier

import "github.com/bureau-foundation/bounded"

// apiTokenFormat accepts the URL-safe token alphabet: letters,
// digits, '-', '_', and '.'. Referenced by the generated
// APITokenSchema; the name is part of the boundedgen custom-format
// contract.
var apiTokenFormat = bounded.NewFormat("token", func(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
})
