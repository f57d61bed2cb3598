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
	"math/bits"
	"math/rand/v2"
	"testing"

	gdeque "github.com/gammazero/deque"
	"github.com/stretchr/testify/require"

	"github.com/maypok86/deque/stats"
)

func TestOrderPreservation(t *testing.T) {
	t.Parallel()

	for _, o := range []*Options{
		nil,
		{InitialCapacity: 2, MinimumCapacity: 2},
		{InitialCapacity: 5, MinimumCapacity: 3},
		{InitialCapacity: 64, MinimumCapacity: 16},
	} {
		q := Must[int](o)
		var ref gdeque.Deque[int]
		r := rand.New(rand.NewPCG(42, 1024))

		for step := 0; step < 20000; step++ {
			switch op := r.IntN(10); {
			case op < 3:
				mustPushBack(t, q, step)
				ref.PushBack(step)
			case op < 6:
				mustPushFront(t, q, step)
				ref.PushFront(step)
			case op < 8:
				v, err := q.PopBack()
				if ref.Len() == 0 {
					require.ErrorIs(t, err, ErrEmptyContainer)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, ref.PopBack(), v)
			default:
				v, err := q.PopFront()
				if ref.Len() == 0 {
					require.ErrorIs(t, err, ErrEmptyContainer)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, ref.PopFront(), v)
			}

			checkInvariants(t, q)
			require.Equal(t, ref.Len(), q.Len())
			if step%97 == 0 {
				for i := 0; i < ref.Len(); i++ {
					require.Equal(t, ref.At(i), q.Get(i))
				}
			}
		}
	}
}

func TestAmortizedGrowth(t *testing.T) {
	t.Parallel()

	const n = 1 << 16

	counter := stats.NewCounter()
	q := Must[int](&Options{StatsRecorder: counter})
	for i := 0; i < n; i++ {
		mustPushBack(t, q, i)
	}

	s := counter.Snapshot()
	// 8 -> 16 -> ... -> 1<<17
	require.Equal(t, uint64(14), s.Grows())
	require.LessOrEqual(t, s.Reallocations(), uint64(bits.Len(n)))
	require.LessOrEqual(t, s.CopiedElements(), uint64(2*n))
	require.Zero(t, s.Shrinks())
}

func TestShrinkGrowSymmetry(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 7, 8, 100, 4097} {
		counter := stats.NewCounter()
		q := Must[int](&Options{StatsRecorder: counter})
		for i := 0; i < n; i++ {
			if i%2 == 0 {
				mustPushBack(t, q, i)
			} else {
				mustPushFront(t, q, i)
			}
		}
		require.Equal(t, n, q.Len())

		for i := 0; i < n; i++ {
			if i%3 == 0 {
				mustPopFront(t, q)
			} else {
				mustPopBack(t, q)
			}
			checkInvariants(t, q)
		}
		require.True(t, q.Empty())
		require.Equal(t, 0, q.Len())

		s := counter.Snapshot()
		require.LessOrEqual(t, s.CopiedElements(), uint64(4*n))
	}
}

func TestThrashingAtBoundary(t *testing.T) {
	t.Parallel()

	counter := stats.NewCounter()
	q := Must[int](&Options{StatsRecorder: counter})
	for i := 0; i < q.Cap()-1; i++ {
		mustPushBack(t, q, i)
	}
	for i := 0; i < 1000; i++ {
		mustPushBack(t, q, i)
		mustPopBack(t, q)
	}
	require.Equal(t, uint64(1), counter.Snapshot().Reallocations())
}
