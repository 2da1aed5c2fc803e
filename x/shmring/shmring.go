// Package shmring is a single-producer, single-consumer byte ring. The
// producer may be an interrupt handler; indices are published with atomics
// and neither side blocks.
package shmring

import (
	"sync/atomic"

	"tremo-go/x/mathx"
)

// Ring is a single-producer, single-consumer byte ring.
type Ring struct {
	buf  []byte
	mask uint32
	rd   atomic.Uint32 // consumer index (monotonic)
	wr   atomic.Uint32 // producer index (monotonic)

	dropped atomic.Uint32
}

// New allocates a ring of size bytes. size must be a power of two >= 2.
func New(size int) *Ring {
	if size < 2 || !mathx.IsPow2(uint(size)) {
		panic("shmring: size must be power of two >= 2")
	}
	return &Ring{buf: make([]byte, size), mask: uint32(size - 1)}
}

func (r *Ring) size() uint32 { return uint32(len(r.buf)) }

// Producer side

// WriteFrom copies as much of src as fits and returns the count. The rest
// is counted as dropped.
func (r *Ring) WriteFrom(src []byte) (n int) {
	if len(src) == 0 {
		return 0
	}
	rd := r.rd.Load()
	wr := r.wr.Load()
	n = min(int(r.size()-(wr-rd)), len(src))
	if lost := len(src) - n; lost > 0 {
		r.dropped.Add(uint32(lost))
	}
	if n == 0 {
		return 0
	}

	wrIdx := wr & r.mask
	first := min(int(r.size()-wrIdx), n)
	copy(r.buf[wrIdx:wrIdx+uint32(first)], src[:first])
	if second := n - first; second > 0 {
		copy(r.buf[:second], src[first:n])
	}
	r.wr.Store(wr + uint32(n)) // release
	return n
}

// Dropped is the number of bytes WriteFrom could not store.
func (r *Ring) Dropped() uint32 { return r.dropped.Load() }

// Consumer side

func (r *Ring) Available() int {
	return int(r.wr.Load() - r.rd.Load())
}

// ReadInto moves up to len(dst) bytes out of the ring.
func (r *Ring) ReadInto(dst []byte) (n int) {
	if len(dst) == 0 {
		return 0
	}
	rd := r.rd.Load()
	wr := r.wr.Load() // acquire
	n = min(int(wr-rd), len(dst))
	if n <= 0 {
		return 0
	}

	rdIdx := rd & r.mask
	first := min(int(r.size()-rdIdx), n)
	copy(dst[:first], r.buf[rdIdx:rdIdx+uint32(first)])
	if second := n - first; second > 0 {
		copy(dst[first:n], r.buf[:second])
	}
	r.rd.Store(rd + uint32(n)) // release
	return n
}
