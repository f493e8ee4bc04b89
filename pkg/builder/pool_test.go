// Copyright 2025 The Strbuild Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_GetPut(t *testing.T) {
	b := Get()
	require.NotNil(t, b)
	assert.Equal(t, 0, b.Len())

	_, err := b.WriteString("pooled content")
	require.NoError(t, err)
	Put(b)

	// A reused Buffer always comes back empty.
	b = Get()
	assert.Equal(t, 0, b.Len())
	Put(b)
}

func TestPool_RejectsUnusable(t *testing.T) {
	assert.NotPanics(t, func() { Put(nil) })

	b := Get()
	b.Release()
	assert.NotPanics(t, func() { Put(b) })

	// Oversized buffers are dropped rather than pooled.
	big := Get()
	_, err := big.Write(make([]byte, maxPooledCap+1))
	require.NoError(t, err)
	assert.NotPanics(t, func() { Put(big) })

	// The pool still hands out working Buffers afterward.
	b = Get()
	require.NoError(t, b.WriteByte('x'))
	assert.Equal(t, "x", b.String())
	Put(b)
}
