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

// Package deque provides a double-ended queue backed by a single growable circular buffer.
package deque

import (
	"context"
	"fmt"
	"math"

	"github.com/maypok86/deque/stats"
)

// RingBuffer is a double-ended queue of values of type T stored in one contiguous
// circular block.
//
// Elements occupy the slots head, head+1, ..., tail-1 modulo Cap(). One slot is always
// kept free, so head == tail means the buffer is empty and Len() never reaches Cap().
// A full buffer doubles its block before the next insertion, and a buffer whose length
// drops to a quarter of its block halves it, but never below the minimum capacity.
//
// The zero value is an empty buffer with default options. Its block is allocated on the first insertion.
//
// RingBuffer is not safe to use concurrently from multiple goroutines.
type RingBuffer[T any] struct {
	buf  []T
	head int
	tail int
	// gen is incremented every time buf is replaced.
	gen uint64

	initialCapacity int
	minCapacity     int
	maxCapacity     int
	recorder        stats.Recorder
	logger          Logger
}

// New constructs an empty RingBuffer with the given options. A nil o means default options.
func New[T any](o *Options) (*RingBuffer[T], error) {
	return newRingBuffer[T](o, 0)
}

// Must creates a configured RingBuffer instance or
// panics if invalid parameters were specified.
func Must[T any](o *Options) *RingBuffer[T] {
	rb, err := New[T](o)
	if err != nil {
		panic(err)
	}
	return rb
}

// NewSized constructs a RingBuffer holding n copies of value.
//
// The block is allocated once with room for at least n elements.
func NewSized[T any](n int, value T, o *Options) (*RingBuffer[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrOutOfRange, n)
	}
	if n >= math.MaxInt-1 {
		return nil, fmt.Errorf("%w: size %d", ErrAllocationFailure, n)
	}

	rb, err := newRingBuffer[T](o, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		rb.buf[i] = value
	}
	rb.tail = n
	return rb, nil
}

func newRingBuffer[T any](o *Options, size int) (*RingBuffer[T], error) {
	if o == nil {
		o = &Options{}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	opts := *o
	opts.setDefaults()

	capacity := max(size+1, opts.InitialCapacity)
	if opts.MaximumCapacity > 0 && capacity > opts.MaximumCapacity {
		return nil, fmt.Errorf("%w: %d slots exceed maximum capacity %d", ErrAllocationFailure, capacity, opts.MaximumCapacity)
	}

	buf, err := allocate[T](capacity)
	if err != nil {
		return nil, err
	}

	return &RingBuffer[T]{
		buf:             buf,
		initialCapacity: opts.InitialCapacity,
		minCapacity:     opts.MinimumCapacity,
		maxCapacity:     opts.MaximumCapacity,
		recorder:        opts.StatsRecorder,
		logger:          opts.Logger,
	}, nil
}

// lazyInit applies the default options to a zero value RingBuffer.
func (rb *RingBuffer[T]) lazyInit() {
	if rb.buf != nil {
		return
	}
	if rb.initialCapacity == 0 {
		var opts Options
		opts.setDefaults()
		rb.initialCapacity = opts.InitialCapacity
		rb.minCapacity = opts.MinimumCapacity
		rb.recorder = opts.StatsRecorder
		rb.logger = opts.Logger
	}
	rb.buf = make([]T, rb.initialCapacity)
	rb.head = 0
	rb.tail = 0
}

// Clone returns a deep copy of the buffer.
//
// The copy has a block of the same capacity with the elements laid out from slot 0 in
// logical order. It shares the options of rb, but not its storage.
func (rb *RingBuffer[T]) Clone() (*RingBuffer[T], error) {
	if rb.buf == nil {
		return &RingBuffer[T]{}, nil
	}

	buf, err := allocate[T](len(rb.buf))
	if err != nil {
		rb.recorder.RecordAllocationFailure()
		rb.logger.Error(context.Background(), "deque: failed to allocate a block for the clone", err)
		return nil, err
	}

	return &RingBuffer[T]{
		buf:             buf,
		tail:            rb.copyTo(buf),
		initialCapacity: rb.initialCapacity,
		minCapacity:     rb.minCapacity,
		maxCapacity:     rb.maxCapacity,
		recorder:        rb.recorder,
		logger:          rb.logger,
	}, nil
}

// Len returns the number of elements currently stored in the buffer.
func (rb *RingBuffer[T]) Len() int {
	if rb == nil || len(rb.buf) == 0 {
		return 0
	}
	return (rb.tail - rb.head + len(rb.buf)) % len(rb.buf)
}

// Empty reports whether the buffer has no elements.
func (rb *RingBuffer[T]) Empty() bool {
	return rb.Len() == 0
}

// Cap returns the number of slots in the backing block.
//
// At most Cap()-1 elements fit before the next insertion reallocates.
func (rb *RingBuffer[T]) Cap() int {
	if rb == nil {
		return 0
	}
	return len(rb.buf)
}

// physical maps the logical index i to a slot of the backing block.
func (rb *RingBuffer[T]) physical(i int) int {
	return (rb.head + i) % len(rb.buf)
}

func (rb *RingBuffer[T]) next(i int) int {
	return (i + 1) % len(rb.buf)
}

func (rb *RingBuffer[T]) prev(i int) int {
	return (i - 1 + len(rb.buf)) % len(rb.buf)
}

// PushBack appends v after the last element.
//
// If the buffer is full, the block is grown first, which invalidates all cursors.
// On ErrAllocationFailure the buffer is left unchanged.
func (rb *RingBuffer[T]) PushBack(v T) error {
	if err := rb.growIfFull(); err != nil {
		return err
	}

	rb.buf[rb.tail] = v
	rb.tail = rb.next(rb.tail)
	return nil
}

// PushFront prepends v before the first element.
//
// If the buffer is full, the block is grown first, which invalidates all cursors.
// On ErrAllocationFailure the buffer is left unchanged.
func (rb *RingBuffer[T]) PushFront(v T) error {
	if err := rb.growIfFull(); err != nil {
		return err
	}

	rb.head = rb.prev(rb.head)
	rb.buf[rb.head] = v
	return nil
}

// PopBack removes and returns the last element.
//
// The block may shrink afterward, which invalidates all cursors.
func (rb *RingBuffer[T]) PopBack() (T, error) {
	var zero T
	if rb.Empty() {
		return zero, ErrEmptyContainer
	}

	rb.tail = rb.prev(rb.tail)
	v := rb.buf[rb.tail]
	rb.buf[rb.tail] = zero

	rb.shrinkIfSparse()
	return v, nil
}

// PopFront removes and returns the first element.
//
// The block may shrink afterward, which invalidates all cursors.
func (rb *RingBuffer[T]) PopFront() (T, error) {
	var zero T
	if rb.Empty() {
		return zero, ErrEmptyContainer
	}

	v := rb.buf[rb.head]
	rb.buf[rb.head] = zero
	rb.head = rb.next(rb.head)

	rb.shrinkIfSparse()
	return v, nil
}

// Front returns the first element.
func (rb *RingBuffer[T]) Front() (T, error) {
	if rb.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return rb.buf[rb.head], nil
}

// Back returns the last element.
func (rb *RingBuffer[T]) Back() (T, error) {
	if rb.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return rb.buf[rb.prev(rb.tail)], nil
}

// At returns the element at logical index i, where 0 is the front.
//
// It returns ErrOutOfRange if i is not in [0, Len()).
func (rb *RingBuffer[T]) At(i int) (T, error) {
	if n := rb.Len(); i < 0 || i >= n {
		var zero T
		return zero, outOfRange(i, n)
	}
	return rb.buf[rb.physical(i)], nil
}

// Get is the panicking counterpart of At.
func (rb *RingBuffer[T]) Get(i int) T {
	return *rb.Ptr(i)
}

// Ptr returns a pointer to the element at logical index i.
// The pointer is only valid until the next reallocation of the block.
//
// It panics if i is not in [0, Len()).
func (rb *RingBuffer[T]) Ptr(i int) *T {
	if n := rb.Len(); i < 0 || i >= n {
		panic(outOfRange(i, n))
	}
	return &rb.buf[rb.physical(i)]
}

// Set replaces the element at logical index i.
//
// It returns ErrOutOfRange if i is not in [0, Len()).
func (rb *RingBuffer[T]) Set(i int, v T) error {
	if n := rb.Len(); i < 0 || i >= n {
		return outOfRange(i, n)
	}
	rb.buf[rb.physical(i)] = v
	return nil
}

// Clear removes all elements. The capacity is retained and cursors are not invalidated
// by reallocation, but none of them is dereferenceable anymore.
func (rb *RingBuffer[T]) Clear() {
	if rb == nil {
		return
	}
	clear(rb.buf)
	rb.head = 0
	rb.tail = 0
}

// Free removes all elements and replaces the block with a fresh one of the initial capacity.
// It invalidates all cursors.
func (rb *RingBuffer[T]) Free() {
	rb.lazyInit()
	rb.buf = make([]T, rb.initialCapacity)
	rb.head = 0
	rb.tail = 0
	rb.gen++
}

// Reserve makes sure that n elements fit without reallocation.
//
// If the block has to grow, it is replaced by one of exactly n+1 slots and all cursors are invalidated.
func (rb *RingBuffer[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrOutOfRange, n)
	}

	rb.lazyInit()
	if n < len(rb.buf) {
		return nil
	}
	if n >= math.MaxInt-1 {
		return rb.allocationFailure(fmt.Errorf("%w: size %d", ErrAllocationFailure, n))
	}

	capacity := n + 1
	if rb.maxCapacity > 0 && capacity > rb.maxCapacity {
		return rb.capacityExceeded(fmt.Errorf("%w: %d slots exceed maximum capacity %d", ErrAllocationFailure, capacity, rb.maxCapacity))
	}

	copied, err := rb.reallocate(capacity)
	if err != nil {
		return err
	}
	rb.recorder.RecordGrow(copied)
	return nil
}

// Resize changes the number of elements to n, removing elements from the back
// or appending copies of value.
//
// Either the whole operation succeeds or the buffer is left unchanged.
func (rb *RingBuffer[T]) Resize(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrOutOfRange, n)
	}

	length := rb.Len()
	if n >= length {
		if err := rb.Reserve(n); err != nil {
			return err
		}
		for i := length; i < n; i++ {
			rb.buf[rb.tail] = value
			rb.tail = rb.next(rb.tail)
		}
		return nil
	}

	var zero T
	for i := n; i < length; i++ {
		rb.tail = rb.prev(rb.tail)
		rb.buf[rb.tail] = zero
	}

	capacity := len(rb.buf)
	for capacity > rb.minCapacity && n*4 <= capacity {
		capacity = max(capacity/2, rb.minCapacity)
	}
	rb.shrinkTo(capacity)
	return nil
}

// Swap exchanges the contents and options of rb and other in constant time.
// It invalidates the cursors of both buffers.
func (rb *RingBuffer[T]) Swap(other *RingBuffer[T]) {
	if rb == other {
		return
	}
	gen := max(rb.gen, other.gen) + 1
	*rb, *other = *other, *rb
	rb.gen = gen
	other.gen = gen
}

// Slice returns a copy of the elements in logical order.
func (rb *RingBuffer[T]) Slice() []T {
	out := make([]T, rb.Len())
	if len(out) > 0 {
		rb.copyTo(out)
	}
	return out
}

// copyTo copies the elements in logical order to the beginning of dst and returns their number.
func (rb *RingBuffer[T]) copyTo(dst []T) int {
	if rb.head <= rb.tail {
		return copy(dst, rb.buf[rb.head:rb.tail])
	}
	n := copy(dst, rb.buf[rb.head:])
	return n + copy(dst[n:], rb.buf[:rb.tail])
}

func (rb *RingBuffer[T]) growIfFull() error {
	rb.lazyInit()
	if rb.Len() < len(rb.buf)-1 {
		return nil
	}

	current := len(rb.buf)
	if current > math.MaxInt/2 {
		return rb.allocationFailure(fmt.Errorf("%w: capacity %d cannot be doubled", ErrAllocationFailure, current))
	}
	capacity := 2 * current
	if rb.maxCapacity > 0 && capacity > rb.maxCapacity {
		if current >= rb.maxCapacity {
			return rb.capacityExceeded(fmt.Errorf("%w: maximum capacity %d reached", ErrAllocationFailure, rb.maxCapacity))
		}
		capacity = rb.maxCapacity
	}

	copied, err := rb.reallocate(capacity)
	if err != nil {
		return err
	}
	rb.recorder.RecordGrow(copied)
	return nil
}

func (rb *RingBuffer[T]) shrinkIfSparse() {
	capacity := len(rb.buf)
	if capacity <= rb.minCapacity || rb.Len()*4 > capacity {
		return
	}
	rb.shrinkTo(max(capacity/2, rb.minCapacity))
}

// shrinkTo is best effort: the elements are already removed, so a failed
// allocation only keeps the larger block.
func (rb *RingBuffer[T]) shrinkTo(capacity int) {
	if capacity >= len(rb.buf) {
		return
	}
	copied, err := rb.reallocate(capacity)
	if err != nil {
		rb.logger.Warn(context.Background(), "deque: failed to shrink the backing block", err)
		return
	}
	rb.recorder.RecordShrink(copied)
}

// reallocate moves the elements into a new block of the given capacity, starting at slot 0.
// The old block is kept if the new one cannot be allocated.
func (rb *RingBuffer[T]) reallocate(capacity int) (int, error) {
	buf, err := allocate[T](capacity)
	if err != nil {
		return 0, rb.allocationFailure(err)
	}

	n := rb.copyTo(buf)
	rb.buf = buf
	rb.head = 0
	rb.tail = n
	rb.gen++
	return n, nil
}

func (rb *RingBuffer[T]) capacityExceeded(err error) error {
	rb.recorder.RecordAllocationFailure()
	rb.logger.Warn(context.Background(), "deque: maximum capacity reached", err)
	return err
}

func (rb *RingBuffer[T]) allocationFailure(err error) error {
	rb.recorder.RecordAllocationFailure()
	rb.logger.Error(context.Background(), "deque: failed to allocate the backing block", err)
	return err
}
