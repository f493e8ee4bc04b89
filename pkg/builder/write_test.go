// Copyright 2025 The Strbuild Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package builder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_AppendOrder(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)

	require.NoError(t, b.WriteByte('a'))

	n, err := b.WriteString("bc")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = b.Write([]byte("def"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = b.WriteRune('é')
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "abcdefé", b.String())
	assert.Equal(t, len("abcdefé"), b.Len())
}

func TestBuffer_Write(t *testing.T) {
	t.Run("empty write is a no-op", func(t *testing.T) {
		b, err := New(4)
		require.NoError(t, err)

		n, err := b.Write(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		n, err = b.WriteString("")
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		assert.Equal(t, 0, b.Len())
		assert.Equal(t, 4, b.Cap())
	})

	t.Run("source spanning two growths", func(t *testing.T) {
		b, err := New(4)
		require.NoError(t, err)

		src := []byte(strings.Repeat("0123456789", 3))
		n, err := b.Write(src)
		require.NoError(t, err)
		assert.Equal(t, len(src), n)
		assert.Equal(t, src, b.Bytes())
		assert.GreaterOrEqual(t, b.Growths(), 2)
	})

	t.Run("large single-byte workload", func(t *testing.T) {
		b, err := New(1)
		require.NoError(t, err)

		var want bytes.Buffer
		for i := 0; i < 4096; i++ {
			c := byte('a' + i%26)
			require.NoError(t, b.WriteByte(c))
			want.WriteByte(c)
		}
		assert.Equal(t, want.String(), b.String())
	})
}

func FuzzBuffer_Write(f *testing.F) {
	f.Add([]byte("hello"), uint8(3))
	f.Add([]byte(""), uint8(0))
	f.Add([]byte("0123456789abcdef"), uint8(9))
	f.Add(bytes.Repeat([]byte{0xff}, 100), uint8(250))

	f.Fuzz(func(t *testing.T, data []byte, seed uint8) {
		b, err := New(int(seed) % 9)
		require.NoError(t, err)

		// Split the input between the single-byte and bulk paths.
		split := 0
		if len(data) > 0 {
			split = int(seed) % len(data)
		}
		for _, c := range data[:split] {
			require.NoError(t, b.WriteByte(c))
		}
		_, err = b.Write(data[split:])
		require.NoError(t, err)

		require.Equal(t, len(data), b.Len())
		require.LessOrEqual(t, b.Len(), b.Cap())
		require.Equal(t, string(data), b.String())
	})
}
