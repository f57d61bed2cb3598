// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package deque

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyContainer is returned by Front, Back, PopFront and PopBack when the buffer has no elements.
	ErrEmptyContainer = errors.New("deque: container is empty")
	// ErrOutOfRange is returned by checked accessors when an index is not in [0, Len()).
	// Unchecked accessors and cursors panic with an error wrapping it.
	ErrOutOfRange = errors.New("deque: index out of range")
	// ErrAllocationFailure is returned when a new backing block cannot be obtained.
	// The buffer is left exactly as it was before the call.
	ErrAllocationFailure = errors.New("deque: backing block cannot be allocated")
	// ErrInvalidatedCursor is the panic value (wrapped) of a Cursor used after the backing
	// block it was taken from has been reallocated.
	ErrInvalidatedCursor = errors.New("deque: cursor used after reallocation")
)

func outOfRange(i, n int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, n)
}

// allocate obtains a block of the given number of slots.
//
// The runtime reports impossible sizes (overflowing the address space) with a panic
// from makeslice. It is turned into ErrAllocationFailure here so that callers can keep
// their state untouched. A real out-of-memory condition still aborts the process.
func allocate[T any](capacity int) (buf []T, err error) {
	if capacity <= 0 || capacity == math.MaxInt {
		return nil, fmt.Errorf("%w: invalid capacity %d", ErrAllocationFailure, capacity)
	}

	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %d slots: %v", ErrAllocationFailure, capacity, r)
		}
	}()

	return make([]T, capacity), nil
}
