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

package history

import (
	"github.com/maypok86/deque"
	"github.com/maypok86/deque/stats"
)

// Option applies options to the History.
type Option func(*options)

type options struct {
	stableHash bool
	logger     deque.Logger
	recorder   stats.Recorder
}

// WithStableHash makes the History hash keys with xxh3 instead of a randomly seeded hash function.
//
// Use it when the same key must produce the same hash in every process.
func WithStableHash() Option {
	return func(o *options) {
		o.stableHash = true
	}
}

// WithLogger sets the logger of the underlying deque.RingBuffer.
func WithLogger(logger deque.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStatsRecorder sets the stats recorder of the underlying deque.RingBuffer.
func WithStatsRecorder(recorder stats.Recorder) Option {
	return func(o *options) {
		o.recorder = recorder
	}
}
