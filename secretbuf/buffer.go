// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secretbuf

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/unix"
)

// Buffer holds secret bytes in an mmap region outside the Go heap,
// locked against swap and excluded from core dumps. It must not be
// copied. Close erases and releases the region; afterwards every
// access panics.
type Buffer struct {
	mu     sync.Mutex
	region []byte
	length int
	closed bool
}

// New allocates a locked buffer of the given size.
//
// The region is mmap'd anonymously (invisible to the garbage
// collector), mlock'd into physical RAM, and advised MADV_DONTDUMP.
// If any of the three steps fails the others are unwound and an error
// is returned — a partially protected buffer is worse than no buffer,
// because the caller would trust it with a secret.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secretbuf: size must be positive, got %d", size)
	}

	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secretbuf: mmap: %w", err)
	}
	if err := unix.Mlock(region); err != nil {
		unix.Munmap(region)
		return nil, fmt.Errorf("secretbuf: mlock: %w", err)
	}
	if err := unix.Madvise(region, unix.MADV_DONTDUMP); err != nil {
		unix.Munlock(region)
		unix.Munmap(region)
		return nil, fmt.Errorf("secretbuf: madvise(MADV_DONTDUMP): %w", err)
	}

	return &Buffer{region: region, length: size}, nil
}

// NewFromBytes moves a secret into a locked buffer: the source bytes
// are copied in and then zeroed in place, so the caller's slice stops
// holding the secret. The caller remains responsible for any other
// copies it made before this call.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("secretbuf: empty source")
	}
	buffer, err := New(len(source))
	if err != nil {
		return nil, err
	}
	copy(buffer.region, source)
	Zero(source)
	return buffer, nil
}

// Bytes returns the secret bytes. The slice points into the locked
// region: do not retain it past the Buffer's life, and never copy it
// onto the heap unless the boundary demands it. Panics after Close.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		panic("secretbuf: read from closed buffer")
	}
	return b.region[:b.length]
}

// Len returns the secret's size in bytes. Unlike Bytes, Len stays
// callable after Close — size is not secret and diagnostics want it.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.length
}

// Close zeroes the region, then munlocks and munmaps it. Idempotent.
// The zeroing is the load-bearing part; unlock/unmap failures are
// reported but the memory no longer holds the secret either way.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	Zero(b.region)

	var firstErr error
	if err := unix.Munlock(b.region); err != nil {
		firstErr = fmt.Errorf("secretbuf: munlock: %w", err)
	}
	if err := unix.Munmap(b.region); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("secretbuf: munmap: %w", err)
	}
	b.region = nil
	return firstErr
}

// Zero overwrites b with zeros. The KeepAlive pins the slice past the
// writes so the compiler cannot discard them as stores to memory that
// is about to become unreachable.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
