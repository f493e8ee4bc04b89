// Copyright 2025 The Strbuild Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package builder

import "sync"

const (
	pooledInitialCap = 64
	// maxPooledCap bounds what Put keeps; buffers grown past it are
	// dropped so one huge build does not pin memory in the pool.
	maxPooledCap = 1 << 16
)

var pool = sync.Pool{
	New: func() any {
		b, _ := New(pooledInitialCap) // HeapAllocator never fails
		return b
	},
}

// Get returns a reset Buffer with the default configuration from a
// package-level pool. Pass it to Put when done building.
func Get() *Buffer {
	b := pool.Get().(*Buffer)
	_ = b.Reset() // retain-capacity reset cannot fail
	return b
}

// Put returns b to the pool for reuse. Released, nil and oversized
// Buffers are dropped.
func Put(b *Buffer) {
	if b == nil || b.released || b.Cap() > maxPooledCap {
		return
	}
	pool.Put(b)
}
