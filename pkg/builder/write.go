// Copyright 2025 The Strbuild Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package builder

import (
	"unicode/utf8"
	"unsafe"
)

// WriteByte appends a single byte, growing first if the Buffer is
// full. The only possible error is an allocation failure during
// growth, in which case the Buffer is unchanged.
func (b *Buffer) WriteByte(c byte) error {
	b.mustUsable("write")

	if b.n == b.Cap() {
		if err := b.grow(); err != nil {
			return err
		}
	}

	b.buf[b.n] = c
	b.n++
	b.version++
	return nil
}

// Write appends p, growing as many times as needed. Each pass fills
// the space left before the next growth rather than sizing a single
// worst-case target, so the growth rule stays in one place. On an
// allocation failure the bytes copied so far remain written and n
// reports them.
//
// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (n int, err error) {
	b.mustUsable("write")

	for n < len(p) {
		space := b.Cap() - b.n
		if space == 0 {
			if err := b.grow(); err != nil {
				if n > 0 {
					b.version++ // partial write still invalidates views
				}
				return n, err
			}
			space = b.Cap() - b.n
		}

		c := min(space, len(p)-n)
		copy(b.buf[b.n:b.n+c], p[n:n+c])
		b.n += c
		n += c
	}

	if len(p) > 0 {
		b.version++
	}
	return n, nil
}

// WriteString appends s without copying it to an intermediate slice.
func (b *Buffer) WriteString(s string) (int, error) {
	if len(s) == 0 {
		b.mustUsable("write")
		return 0, nil
	}
	return b.Write(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// WriteRune appends the UTF-8 encoding of r and returns its length
// in bytes.
func (b *Buffer) WriteRune(r rune) (int, error) {
	var tmp [utf8.UTFMax]byte
	return b.Write(utf8.AppendRune(tmp[:0], r))
}
