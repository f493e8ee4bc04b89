// Copyright 2025 The Strbuild Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package builder implements a growable byte buffer for incremental
// string construction with a configurable growth policy.
//
// A Buffer owns a contiguous backing region with one extra byte
// reserved for a terminator, tracks a write cursor, and reallocates
// multiplicatively when full, so appends are amortized O(1). It is
// not safe for concurrent mutation without external synchronization.
package builder

import "math"

// ResetPolicy selects what Reset does with the backing memory.
type ResetPolicy int

const (
	// RetainCapacity keeps the current allocation and rewinds the
	// write cursor to zero. O(1).
	RetainCapacity ResetPolicy = iota
	// ReallocateToInitial discards the grown allocation and
	// reallocates the initial capacity, shrinking the Buffer back
	// down. O(capacity).
	ReallocateToInitial
)

// DefaultGrowthFactor is applied when no growth factor is configured.
const DefaultGrowthFactor = 2.0

// minGrowCapacity is the absolute growth floor. Multiplying a zero
// or tiny capacity cannot make forward progress on its own, so a
// growth step never produces a capacity below this value.
const minGrowCapacity = 8

// Buffer is a growable byte buffer. The zero value is an empty
// buffer with the default configuration, ready to use; New is the
// way to configure capacity, growth and reset behavior.
//
// The backing region is always capacity+1 bytes: the extra slot
// holds the terminator written by the finalize methods and is never
// counted by Cap.
type Buffer struct {
	buf []byte // backing region, len(buf) == Cap()+1 once allocated
	n   int    // bytes written

	initialCap   int
	growthFactor float64
	resetPolicy  ResetPolicy
	alloc        Allocator

	version  uint64 // bumped on every mutation, invalidates Views
	growths  int
	released bool
}

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithGrowthFactor sets the capacity multiplier applied on growth.
// Must be greater than 1.0.
func WithGrowthFactor(f float64) Option {
	return func(b *Buffer) { b.growthFactor = f }
}

// WithResetPolicy sets the Reset behavior. Default is RetainCapacity.
func WithResetPolicy(p ResetPolicy) Option {
	return func(b *Buffer) { b.resetPolicy = p }
}

// WithAllocator sets the memory provider used for construction,
// growth, owned copies and reallocating resets.
func WithAllocator(a Allocator) Option {
	return func(b *Buffer) { b.alloc = a }
}

// New returns a Buffer with room for initialCap bytes before the
// first growth. The backing allocation is initialCap+1 bytes; the
// reserved terminator slot is not counted by Cap.
func New(initialCap int, opts ...Option) (*Buffer, error) {
	if initialCap < 0 {
		return nil, &Error{Op: "new", Err: ErrInvalidCapacity}
	}

	b := &Buffer{
		initialCap:   initialCap,
		growthFactor: DefaultGrowthFactor,
		resetPolicy:  RetainCapacity,
		alloc:        HeapAllocator{},
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.growthFactor <= 1.0 {
		return nil, &Error{Op: "new", Err: ErrInvalidGrowthFactor}
	}

	buf, err := b.allocBytes("new", initialCap+1)
	if err != nil {
		return nil, err
	}
	b.buf = buf
	return b, nil
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return b.n }

// Cap returns the current capacity in bytes, excluding the reserved
// terminator slot. Len() <= Cap() always holds; when they are equal
// the next write grows the Buffer first.
func (b *Buffer) Cap() int {
	if len(b.buf) == 0 {
		return 0
	}
	return len(b.buf) - 1
}

// GrowthFactor returns the configured capacity multiplier.
func (b *Buffer) GrowthFactor() float64 { return b.factor() }

// Growths returns how many times the Buffer has reallocated.
func (b *Buffer) Growths() int { return b.growths }

// Released reports whether Release has been called.
func (b *Buffer) Released() bool { return b.released }

// grow reallocates the backing region to floor(Cap*factor) bytes,
// clamped to at least Cap+1 and minGrowCapacity, plus the terminator
// slot. The old region is kept intact until the new one is
// allocated, so a failed growth leaves the Buffer unchanged.
func (b *Buffer) grow() error {
	oldCap := b.Cap()

	newCap := int(math.Floor(float64(oldCap) * b.factor()))
	if newCap < oldCap+1 {
		newCap = oldCap + 1
	}
	if newCap < minGrowCapacity {
		newCap = minGrowCapacity
	}

	next, err := b.allocBytes("grow", newCap+1)
	if err != nil {
		return err
	}

	copy(next, b.buf[:b.n])
	b.buf = next
	b.growths++
	return nil
}

// Reset logically discards the accumulated bytes.
//
// Under RetainCapacity the allocation and capacity are kept and only
// the write cursor rewinds; prior bytes are overwritten by later
// appends, never cleared. Under ReallocateToInitial the backing
// region is reallocated at the initial capacity; if that allocation
// fails the Buffer keeps its old region and contents and the error
// is returned.
func (b *Buffer) Reset() error {
	b.mustUsable("reset")

	if b.resetPolicy == ReallocateToInitial {
		next, err := b.allocBytes("reset", b.initialCap+1)
		if err != nil {
			return err
		}
		b.buf = next
	}

	b.n = 0
	b.version++
	return nil
}

// Release drops the backing memory. The Buffer must not be used
// afterward; any further operation panics. Releasing an already
// released Buffer is a no-op.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	b.released = true
	b.buf = nil
	b.n = 0
	b.version++
}

func (b *Buffer) factor() float64 {
	if b.growthFactor <= 1.0 {
		return DefaultGrowthFactor
	}
	return b.growthFactor
}

func (b *Buffer) allocator() Allocator {
	if b.alloc == nil {
		return HeapAllocator{}
	}
	return b.alloc
}

func (b *Buffer) allocBytes(op string, n int) ([]byte, error) {
	p, err := b.allocator().Alloc(n)
	if err != nil {
		return nil, &Error{Op: op, Err: &AllocError{Size: n, Err: err}}
	}
	return p, nil
}

func (b *Buffer) mustUsable(op string) {
	if b.released {
		panic("builder: " + op + " on released Buffer")
	}
}
