// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bounded

import "runtime"

// Wipe overwrites every byte of the value's storage — the full fixed
// buffer or the overflow buffer, whichever is active — with zero,
// then marks the value dead. Any later read through this value or any
// copy of it panics; wiped means gone, not empty. Wipe is idempotent.
//
// Go has no destructor, so erasure is an explicit call at the end of
// the value's life, the same discipline as closing a file. A GC-time
// hook cannot do this: memory must stay reachable to be zeroed.
// Because copies alias the same buffer, one Wipe erases the content
// everywhere it was visible.
//
// Wiping the zero value is a no-op.
func (s Str[D]) Wipe() {
	if s.st == nil || s.st.wiped {
		return
	}
	zero(s.st.fixed)
	zero(s.st.spill)
	s.st.n = 0
	s.st.logical = 0
	s.st.wiped = true
}

// zero overwrites b with zeros. The KeepAlive pins the slice past the
// writes so they remain an observable side effect of the function and
// cannot be treated as stores to dead memory.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
