// Copyright 2025 The Strbuild Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package builder

import "unsafe"

// String returns the accumulated bytes as a string without copying,
// after writing the terminator into the reserved slot. The result
// borrows the Buffer's memory: it is valid only until the next
// mutating call (write, reset, release), because growth relocates
// the backing region. Safe to call repeatedly.
//
// Like [strings.Builder.String], it does not allocate a new string.
func (b *Buffer) String() string {
	b.mustUsable("string")
	if len(b.buf) == 0 {
		return ""
	}
	b.terminate()
	return unsafe.String(unsafe.SliceData(b.buf), b.n)
}

// Bytes returns the accumulated bytes as a borrowed view with the
// same lifetime rules as String. The returned slice's capacity is
// clipped so appending to it cannot clobber the terminator slot.
func (b *Buffer) Bytes() []byte {
	b.mustUsable("bytes")
	if len(b.buf) == 0 {
		return nil
	}
	b.terminate()
	return b.buf[:b.n:b.n]
}

// CopyBytes returns an independently owned copy of the accumulated
// bytes. The copy is allocated through the Buffer's Allocator at
// exactly Len()+1 bytes (content plus terminator); on allocation
// failure the Buffer itself is untouched.
func (b *Buffer) CopyBytes() ([]byte, error) {
	b.mustUsable("copy")

	out, err := b.allocBytes("copy", b.n+1)
	if err != nil {
		return nil, err
	}

	copy(out, b.buf[:b.n])
	out[b.n] = 0
	return out[:b.n:b.n], nil
}

// CopyString returns an independently owned copy of the accumulated
// bytes as a string.
func (b *Buffer) CopyString() (string, error) {
	out, err := b.CopyBytes()
	if err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", nil
	}
	return unsafe.String(unsafe.SliceData(out), len(out)), nil
}

// terminate writes the terminator byte into the reserved +1 slot.
// It does not change Len or Cap and is idempotent.
func (b *Buffer) terminate() {
	b.buf[b.n] = 0
}

// A View is a borrowed window onto a Buffer's content, pinned to the
// Buffer's state at the moment it was taken. Using a View after the
// Buffer has been mutated, reset or released panics instead of
// silently reading relocated or rewritten memory.
type View struct {
	b       *Buffer
	version uint64
}

// View returns a generation-checked borrowed view of the current
// content.
func (b *Buffer) View() View {
	b.mustUsable("view")
	return View{b: b, version: b.version}
}

// Valid reports whether the Buffer is still in the state the View
// was taken from.
func (v View) Valid() bool {
	return v.b != nil && !v.b.released && v.b.version == v.version
}

// Bytes returns the viewed content. Panics if the View is stale.
func (v View) Bytes() []byte {
	v.mustValid()
	return v.b.Bytes()
}

// String returns the viewed content without copying. Panics if the
// View is stale.
func (v View) String() string {
	v.mustValid()
	return v.b.String()
}

// Len returns the viewed length. Panics if the View is stale.
func (v View) Len() int {
	v.mustValid()
	return v.b.n
}

func (v View) mustValid() {
	if !v.Valid() {
		panic("builder: use of stale View")
	}
}
