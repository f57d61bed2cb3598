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

// Package history provides a bounded set of recently seen keys.
package history

import (
	"errors"

	"github.com/dolthub/swiss"

	"github.com/maypok86/deque"
)

const maxInitialSlots = 64

// History remembers the hashes of the last Capacity() distinct keys added to it.
// When it is full, adding a new key forgets the oldest one.
//
// Only hashes are stored, so two keys with the same hash are indistinguishable.
//
// History is not safe to use concurrently from multiple goroutines.
type History[K comparable] struct {
	q        *deque.RingBuffer[uint64]
	m        *swiss.Map[uint64, struct{}]
	hasher   hasher[K]
	capacity int
}

// New creates a History that remembers up to capacity keys.
func New[K comparable](capacity int, opts ...Option) (*History[K], error) {
	if capacity < 1 {
		return nil, errors.New("history: capacity should be positive")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// one extra slot is the sentinel of the ring buffer.
	slots := capacity + 1
	initial := min(slots, maxInitialSlots)
	q, err := deque.New[uint64](&deque.Options{
		InitialCapacity: initial,
		MaximumCapacity: slots,
		StatsRecorder:   o.recorder,
		Logger:          o.logger,
	})
	if err != nil {
		return nil, err
	}

	var h hasher[K]
	if o.stableHash {
		h = newStableHasher[K]()
	} else {
		h = newSeededHasher[K]()
	}

	//nolint:gosec // initial is at most maxInitialSlots
	size := uint32(initial)
	return &History[K]{
		q:        q,
		m:        swiss.NewMap[uint64, struct{}](size),
		hasher:   h,
		capacity: capacity,
	}, nil
}

// Add records key and reports whether the oldest key had to be forgotten to make room for it.
// Adding a key that is already remembered changes nothing.
//
// If the underlying ring buffer cannot grow, the key is not recorded and an error is returned.
func (h *History[K]) Add(key K) (bool, error) {
	hash := h.hasher.hash(key)
	if _, ok := h.m.Get(hash); ok {
		return false, nil
	}

	evicted := false
	for h.q.Len() >= h.capacity {
		oldest, err := h.q.PopFront()
		if err != nil {
			return evicted, err
		}
		h.m.Delete(oldest)
		evicted = true
	}

	if err := h.q.PushBack(hash); err != nil {
		return evicted, err
	}
	h.m.Put(hash, struct{}{})
	return evicted, nil
}

// Contains reports whether key is remembered.
func (h *History[K]) Contains(key K) bool {
	_, ok := h.m.Get(h.hasher.hash(key))
	return ok
}

// Len returns the number of remembered keys.
func (h *History[K]) Len() int {
	return h.q.Len()
}

// Capacity returns the maximum number of remembered keys.
func (h *History[K]) Capacity() int {
	return h.capacity
}

// Clear forgets all keys.
func (h *History[K]) Clear() {
	h.q.Clear()
	h.m.Clear()
}
