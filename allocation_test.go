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
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	grows    int
	shrinks  int
	copied   int
	failures int
}

func newRecorder() *recorder {
	return &recorder{}
}

func (r *recorder) RecordGrow(copied int) {
	r.grows++
	r.copied += copied
}

func (r *recorder) RecordShrink(copied int) {
	r.shrinks++
	r.copied += copied
}

func (r *recorder) RecordAllocationFailure() {
	r.failures++
}

type logEntry struct {
	level string
	msg   string
	err   error
}

type testLogger struct {
	entries []logEntry
}

func (l *testLogger) Warn(ctx context.Context, msg string, err error) {
	l.entries = append(l.entries, logEntry{level: "warn", msg: msg, err: err})
}

func (l *testLogger) Error(ctx context.Context, msg string, err error) {
	l.entries = append(l.entries, logEntry{level: "error", msg: msg, err: err})
}

func TestAllocate(t *testing.T) {
	t.Parallel()

	buf, err := allocate[int](4)
	require.NoError(t, err)
	require.Len(t, buf, 4)

	for _, capacity := range []int{-1, 0, math.MaxInt, math.MaxInt / 2} {
		buf, err = allocate[int](capacity)
		require.ErrorIs(t, err, ErrAllocationFailure)
		require.Nil(t, buf)
	}
}

func TestMaximumCapacity(t *testing.T) {
	t.Parallel()

	rec := newRecorder()
	logger := &testLogger{}
	q := Must[int](&Options{
		InitialCapacity: 4,
		MaximumCapacity: 12,
		StatsRecorder:   rec,
		Logger:          logger,
	})

	for i := 0; i < 11; i++ {
		mustPushBack(t, q, i)
	}
	// 4 -> 8 -> 12
	require.Equal(t, 12, q.Cap())
	require.Equal(t, 2, rec.grows)

	before := q.Slice()
	gen := q.gen
	require.ErrorIs(t, q.PushBack(11), ErrAllocationFailure)
	require.ErrorIs(t, q.PushFront(-1), ErrAllocationFailure)
	require.Equal(t, before, q.Slice())
	require.Equal(t, 12, q.Cap())
	require.Equal(t, gen, q.gen)
	require.Equal(t, 2, rec.failures)

	require.Len(t, logger.entries, 2)
	require.Equal(t, "warn", logger.entries[0].level)
	require.ErrorIs(t, logger.entries[0].err, ErrAllocationFailure)

	mustPopFront(t, q)
	mustPushBack(t, q, 11)
	require.Equal(t, 11, mustBack(t, q))
}

func TestAllocationFailureKeepsState(t *testing.T) {
	t.Parallel()

	rec := newRecorder()
	logger := &testLogger{}
	q := Must[int](&Options{StatsRecorder: rec, Logger: logger})
	for i := 0; i < 5; i++ {
		mustPushFront(t, q, i)
	}
	before := q.Slice()
	c := q.Begin()

	require.ErrorIs(t, q.Reserve(math.MaxInt/2), ErrAllocationFailure)
	require.ErrorIs(t, q.Reserve(math.MaxInt), ErrAllocationFailure)
	require.ErrorIs(t, q.Resize(math.MaxInt/2, 1), ErrAllocationFailure)

	require.Equal(t, before, q.Slice())
	require.Equal(t, defaultInitialCapacity, q.Cap())
	require.True(t, c.Valid())
	require.Equal(t, 3, rec.failures)
	require.Zero(t, rec.grows)

	require.Len(t, logger.entries, 3)
	for _, e := range logger.entries {
		require.Equal(t, "error", e.level)
		require.ErrorIs(t, e.err, ErrAllocationFailure)
	}
}

func TestStatsRecorder(t *testing.T) {
	t.Parallel()

	rec := newRecorder()
	q := Must[int](&Options{StatsRecorder: rec})
	for i := 0; i < 16; i++ {
		mustPushBack(t, q, i)
	}
	// 8 -> 16 -> 32
	require.Equal(t, 2, rec.grows)
	require.Equal(t, 7+15, rec.copied)

	for i := 0; i < 16; i++ {
		mustPopFront(t, q)
	}
	// 32 -> 16 -> 8 -> 4
	require.Equal(t, 3, rec.shrinks)
	require.Equal(t, 7+15+8+4+2, rec.copied)
}
