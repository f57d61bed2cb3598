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

	"github.com/maypok86/deque/stats"
)

const (
	defaultInitialCapacity = 8
	defaultMinimumCapacity = 4
	// one slot for an element and one sentinel slot.
	lowestMinimumCapacity = 2
)

// Options should be passed to New to construct a RingBuffer.
//
// All capacities are measured in slots of the backing block. One slot is always kept
// free, so a block of c slots holds at most c-1 elements.
type Options struct {
	// InitialCapacity specifies the number of slots allocated at construction time. Providing a large enough
	// estimate avoids the need for expensive resizing operations later, but setting this
	// value unnecessarily high wastes memory.
	//
	// Defaults to 8.
	InitialCapacity int
	// MinimumCapacity specifies the floor below which the backing block is never shrunk.
	//
	// Defaults to min(4, InitialCapacity) and cannot be less than 2.
	MinimumCapacity int
	// MaximumCapacity specifies the largest backing block the buffer may allocate. Pushing into a full
	// buffer of this capacity fails with ErrAllocationFailure.
	//
	// Zero means the buffer is unbounded.
	MaximumCapacity int
	// StatsRecorder accumulates statistics about reallocations.
	StatsRecorder stats.Recorder
	// Logger specifies the Logger implementation that will be used for logging warning and errors.
	//
	// Logging is disabled by default.
	Logger Logger
}

func (o *Options) getInitialCapacity() int {
	if o.InitialCapacity > 0 {
		return o.InitialCapacity
	}
	return defaultInitialCapacity
}

func (o *Options) getMinimumCapacity() int {
	if o.MinimumCapacity > 0 {
		return o.MinimumCapacity
	}
	return min(defaultMinimumCapacity, o.getInitialCapacity())
}

func (o *Options) validate() error {
	if o.InitialCapacity < 0 {
		return errors.New("deque: initial capacity should be positive")
	}
	if o.MinimumCapacity < 0 {
		return errors.New("deque: minimum capacity should be positive")
	}
	if o.MaximumCapacity < 0 {
		return errors.New("deque: maximum capacity should be positive")
	}

	if o.getInitialCapacity() < lowestMinimumCapacity {
		return errors.New("deque: initial capacity should be at least 2")
	}
	if o.getMinimumCapacity() < lowestMinimumCapacity {
		return errors.New("deque: minimum capacity should be at least 2")
	}
	if o.getInitialCapacity() < o.getMinimumCapacity() {
		return errors.New("deque: initial capacity is less than minimum capacity")
	}
	if o.MaximumCapacity > 0 && o.MaximumCapacity < o.getInitialCapacity() {
		return errors.New("deque: maximum capacity is less than initial capacity")
	}

	return nil
}

func (o *Options) setDefaults() {
	o.InitialCapacity = o.getInitialCapacity()
	o.MinimumCapacity = o.getMinimumCapacity()
	if o.StatsRecorder == nil {
		o.StatsRecorder = stats.NoopRecorder{}
	}
	if o.Logger == nil {
		o.Logger = noopLogger{}
	}
}
