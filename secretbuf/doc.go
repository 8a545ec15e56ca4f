// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secretbuf stores secret material in memory the Go runtime
// cannot touch: an anonymous mmap region, locked into physical RAM
// with mlock so it never reaches swap, and marked MADV_DONTDUMP so it
// never reaches a core dump. The garbage collector neither sees nor
// relocates the region, which is what makes the zero-on-close
// guarantee real — a heap-allocated secret can be copied by the
// runtime before the program gets a chance to erase it.
//
// A Buffer is filled once, read through Bytes, and erased exactly
// once with Close: zero every byte, munlock, munmap. After Close any
// access panics. ReadFromPath and ReadPrompt are the two supported
// ways to bring a secret into the process (file/stdin and terminal)
// without leaving stray heap copies behind.
//
// bounded.NewLocked builds on this package to keep a schema-validated
// secret string in locked memory for its whole life.
package secretbuf
