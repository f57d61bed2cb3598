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
	"sync/atomic"
)

// Recorder accumulates statistics during the operation of a deque.RingBuffer.
type Recorder interface {
	// RecordGrow records the replacement of the backing block by a larger one.
	// copied is the number of live elements moved into the new block.
	RecordGrow(copied int)
	// RecordShrink records the replacement of the backing block by a smaller one.
	// copied is the number of live elements moved into the new block.
	RecordShrink(copied int)
	// RecordAllocationFailure records a failed attempt to obtain a new backing block.
	RecordAllocationFailure()
}

// NoopRecorder is a Recorder that discards everything.
type NoopRecorder struct{}

func (NoopRecorder) RecordGrow(copied int)    {}
func (NoopRecorder) RecordShrink(copied int)  {}
func (NoopRecorder) RecordAllocationFailure() {}

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*Counter)(nil)
)

// Counter is a goroutine-safe Recorder implementation.
//
// A deque.RingBuffer is not safe for concurrent use, but a Counter may be shared by
// several of them and read by a metrics exporter at any time.
type Counter struct {
	grows              atomic.Uint64
	shrinks            atomic.Uint64
	copiedElements     atomic.Uint64
	allocationFailures atomic.Uint64
}

// NewCounter constructs a Counter instance with all counts initialized to zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Snapshot returns a snapshot of this recorder's values. Note that this may be an inconsistent view, as it
// may be interleaved with update operations.
func (c *Counter) Snapshot() Stats {
	return Stats{
		grows:              c.grows.Load(),
		shrinks:            c.shrinks.Load(),
		copiedElements:     c.copiedElements.Load(),
		allocationFailures: c.allocationFailures.Load(),
	}
}

// RecordGrow records the replacement of the backing block by a larger one.
func (c *Counter) RecordGrow(copied int) {
	c.grows.Add(1)
	//nolint:gosec // copied is never negative
	c.copiedElements.Add(uint64(copied))
}

// RecordShrink records the replacement of the backing block by a smaller one.
func (c *Counter) RecordShrink(copied int) {
	c.shrinks.Add(1)
	//nolint:gosec // copied is never negative
	c.copiedElements.Add(uint64(copied))
}

// RecordAllocationFailure records a failed attempt to obtain a new backing block.
func (c *Counter) RecordAllocationFailure() {
	c.allocationFailures.Add(1)
}
