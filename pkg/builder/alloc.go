// Copyright 2025 The Strbuild Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package builder

// Allocator supplies backing memory for Buffers. Implementations may
// draw from the heap, an arena, or a quota and report exhaustion as
// an error; a failed Alloc must leave the allocator usable.
type Allocator interface {
	// Alloc returns a zeroed slice of exactly n bytes.
	Alloc(n int) ([]byte, error)
}

// HeapAllocator allocates from the Go heap. It never fails.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(n int) ([]byte, error) {
	return make([]byte, n), nil
}
