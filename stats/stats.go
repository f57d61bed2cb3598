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

package stats

import (
	"math"
)

// Stats are statistics about the reallocations of a deque.RingBuffer.
type Stats struct {
	grows              uint64
	shrinks            uint64
	copiedElements     uint64
	allocationFailures uint64
}

// Grows returns the number of times the backing block was replaced by a larger one.
func (s Stats) Grows() uint64 {
	return s.grows
}

// Shrinks returns the number of times the backing block was replaced by a smaller one.
func (s Stats) Shrinks() uint64 {
	return s.shrinks
}

// Reallocations returns the total number of grows and shrinks.
//
// NOTE: the values of the metrics are undefined in case of overflow. If you require specific handling, we recommend
// implementing your own stats.Recorder.
func (s Stats) Reallocations() uint64 {
	return checkedAdd(s.grows, s.shrinks)
}

// CopiedElements returns the number of live elements moved into new backing blocks.
//
// This is the amount of extra work spent on resizing, so for N consecutive pushes
// it stays below 2*N.
func (s Stats) CopiedElements() uint64 {
	return s.copiedElements
}

// AllocationFailures returns the number of times a new backing block could not be obtained.
func (s Stats) AllocationFailures() uint64 {
	return s.allocationFailures
}

// AverageCopiesPerReallocation returns the average number of elements moved by a single reallocation.
func (s Stats) AverageCopiesPerReallocation() float64 {
	reallocations := s.Reallocations()
	if reallocations == 0 {
		return 0.0
	}
	return float64(s.copiedElements) / float64(reallocations)
}

// Minus returns a new Stats representing the difference between this Stats and other.
// Negative values, which aren't supported by Stats will be rounded up to zero.
func (s Stats) Minus(other Stats) Stats {
	return Stats{
		grows:              subtract(s.grows, other.grows),
		shrinks:            subtract(s.shrinks, other.shrinks),
		copiedElements:     subtract(s.copiedElements, other.copiedElements),
		allocationFailures: subtract(s.allocationFailures, other.allocationFailures),
	}
}

func subtract(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}

func checkedAdd(a, b uint64) uint64 {
	s := a + b
	if s < a || s < b {
		return math.MaxUint64
	}
	return s
}
