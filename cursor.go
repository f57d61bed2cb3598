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
	"iter"
)

var errForeignCursor = errors.New("deque: cursors belong to different ranges")

// Cursor is a position in the range [0, Len()] of a RingBuffer. Position Len() is the
// end sentinel and cannot be dereferenced.
//
// A Cursor does not own any storage. It stays usable until the backing block of its
// buffer is reallocated (by growth, shrinking, Reserve, Resize, Swap or Free); after that
// every method except Valid and Equal panics with an error wrapping ErrInvalidatedCursor.
// Removing elements does not reallocate by itself, but positions refer to logical
// indices, so the element under a forward cursor changes after PopFront.
//
// Reverse cursors count positions from the back: position 0 is the last element.
type Cursor[T any] struct {
	rb      *RingBuffer[T]
	pos     int
	gen     uint64
	reverse bool
}

// Begin returns a cursor at the first element.
func (rb *RingBuffer[T]) Begin() Cursor[T] {
	return rb.cursor(0, false)
}

// End returns the sentinel cursor one past the last element.
func (rb *RingBuffer[T]) End() Cursor[T] {
	return rb.cursor(rb.Len(), false)
}

// ReverseBegin returns a reverse cursor at the last element.
func (rb *RingBuffer[T]) ReverseBegin() Cursor[T] {
	return rb.cursor(0, true)
}

// ReverseEnd returns the sentinel reverse cursor one before the first element.
func (rb *RingBuffer[T]) ReverseEnd() Cursor[T] {
	return rb.cursor(rb.Len(), true)
}

func (rb *RingBuffer[T]) cursor(pos int, reverse bool) Cursor[T] {
	return Cursor[T]{
		rb:      rb,
		pos:     pos,
		gen:     rb.gen,
		reverse: reverse,
	}
}

func (c Cursor[T]) check() {
	if c.rb == nil {
		panic(fmt.Errorf("%w: cursor is not bound to a buffer", ErrInvalidatedCursor))
	}
	if c.gen != c.rb.gen {
		panic(fmt.Errorf("%w: cursor generation %d, buffer generation %d", ErrInvalidatedCursor, c.gen, c.rb.gen))
	}
}

// Valid reports whether the cursor can be dereferenced.
func (c Cursor[T]) Valid() bool {
	return c.rb != nil && c.gen == c.rb.gen && c.pos < c.rb.Len()
}

// Pos returns the position of the cursor in its range.
func (c Cursor[T]) Pos() int {
	return c.pos
}

// Index returns the logical index of the element under the cursor.
func (c Cursor[T]) Index() int {
	c.check()
	if c.reverse {
		return c.rb.Len() - 1 - c.pos
	}
	return c.pos
}

// Ptr returns a pointer to the element under the cursor.
// The pointer is only valid until the next reallocation of the block.
func (c Cursor[T]) Ptr() *T {
	c.check()
	if n := c.rb.Len(); c.pos >= n {
		panic(fmt.Errorf("%w: cursor at position %d, length %d", ErrOutOfRange, c.pos, n))
	}
	return &c.rb.buf[c.rb.physical(c.Index())]
}

// Value returns the element under the cursor.
func (c Cursor[T]) Value() T {
	return *c.Ptr()
}

// Set replaces the element under the cursor.
func (c Cursor[T]) Set(v T) {
	*c.Ptr() = v
}

// Add returns the cursor moved by n positions. The result must stay within [0, Len()].
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.check()
	pos := c.pos + n
	if length := c.rb.Len(); pos < 0 || pos > length {
		panic(fmt.Errorf("%w: cursor moved to position %d, length %d", ErrOutOfRange, pos, length))
	}
	c.pos = pos
	return c
}

// Next returns the cursor moved one position forward.
func (c Cursor[T]) Next() Cursor[T] {
	return c.Add(1)
}

// Prev returns the cursor moved one position backward.
func (c Cursor[T]) Prev() Cursor[T] {
	return c.Add(-1)
}

// Distance returns the number of positions from other to c.
// Both cursors must belong to the same buffer and direction.
func (c Cursor[T]) Distance(other Cursor[T]) int {
	c.check()
	other.check()
	if c.rb != other.rb || c.reverse != other.reverse {
		panic(errForeignCursor)
	}
	return c.pos - other.pos
}

// Equal reports whether both cursors are at the same position of the same range.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.rb == other.rb && c.reverse == other.reverse && c.pos == other.pos
}

// All returns an iterator over the logical indices and elements from front to back.
//
// The buffer may be modified during iteration as long as the block is not
// reallocated; otherwise the iterator panics with an error wrapping ErrInvalidatedCursor.
func (rb *RingBuffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for c := rb.Begin(); ; c.pos++ {
			c.check()
			if !c.Valid() {
				return
			}
			if !yield(c.pos, c.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the logical indices and elements from back to front.
//
// The same rules as for All apply.
func (rb *RingBuffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for c := rb.ReverseBegin(); ; c.pos++ {
			c.check()
			if !c.Valid() {
				return
			}
			if !yield(c.Index(), c.Value()) {
				return
			}
		}
	}
}
