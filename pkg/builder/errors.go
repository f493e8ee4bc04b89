// Copyright 2025 The Strbuild Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package builder

import (
	"errors"
	"fmt"
)

// ErrAllocation matches any allocation failure via errors.Is,
// regardless of which Allocator produced it.
var ErrAllocation = errors.New("allocation failure")

var ErrInvalidCapacity = errors.New("negative initial capacity")
var ErrInvalidGrowthFactor = errors.New("growth factor must be greater than 1.0")

// Error wraps a failure with the Buffer operation that caused it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("builder %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// AllocError records a failed allocation request.
type AllocError struct {
	Size int // requested byte count
	Err  error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("allocation of %d bytes failed: %v", e.Size, e.Err)
}

func (e *AllocError) Unwrap() error { return e.Err }

// Is reports ErrAllocation so callers can match the failure kind
// without knowing the allocator.
func (e *AllocError) Is(target error) bool { return target == ErrAllocation }
