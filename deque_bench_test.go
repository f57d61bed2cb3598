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
	"testing"

	"github.com/eapache/queue"
	gdeque "github.com/gammazero/deque"
)

const benchWindow = 1024

type fifo interface {
	push(v int)
	pop() int
	len() int
}

type ringBufferFIFO struct {
	q *RingBuffer[int]
}

func (f ringBufferFIFO) push(v int) {
	_ = f.q.PushBack(v)
}

func (f ringBufferFIFO) pop() int {
	v, _ := f.q.PopFront()
	return v
}

func (f ringBufferFIFO) len() int {
	return f.q.Len()
}

type gammazeroFIFO struct {
	q *gdeque.Deque[int]
}

func (f gammazeroFIFO) push(v int) {
	f.q.PushBack(v)
}

func (f gammazeroFIFO) pop() int {
	return f.q.PopFront()
}

func (f gammazeroFIFO) len() int {
	return f.q.Len()
}

type eapacheFIFO struct {
	q *queue.Queue
}

func (f eapacheFIFO) push(v int) {
	f.q.Add(v)
}

func (f eapacheFIFO) pop() int {
	return f.q.Remove().(int)
}

func (f eapacheFIFO) len() int {
	return f.q.Length()
}

func benchmarkFIFO(b *testing.B, newFIFO func() fifo) {
	b.Helper()

	b.Run("fill_drain", func(b *testing.B) {
		f := newFIFO()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < benchWindow; j++ {
				f.push(j)
			}
			for f.len() > 0 {
				f.pop()
			}
		}
	})

	b.Run("sliding_window", func(b *testing.B) {
		f := newFIFO()
		for j := 0; j < benchWindow; j++ {
			f.push(j)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			f.push(i)
			f.pop()
		}
	})
}

func BenchmarkFIFO(b *testing.B) {
	b.Run("ringbuffer", func(b *testing.B) {
		benchmarkFIFO(b, func() fifo {
			return ringBufferFIFO{q: Must[int](nil)}
		})
	})
	b.Run("gammazero", func(b *testing.B) {
		benchmarkFIFO(b, func() fifo {
			return gammazeroFIFO{q: gdeque.New[int]()}
		})
	})
	b.Run("eapache", func(b *testing.B) {
		benchmarkFIFO(b, func() fifo {
			return eapacheFIFO{q: queue.New()}
		})
	})
}

func BenchmarkCursorIteration(b *testing.B) {
	q := Must[int](nil)
	for i := 0; i < benchWindow; i++ {
		_ = q.PushFront(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for c := q.Begin(); c.Valid(); c = c.Next() {
			sum += c.Value()
		}
		_ = sum
	}
}

func BenchmarkRangeIteration(b *testing.B) {
	q := Must[int](nil)
	for i := 0; i < benchWindow; i++ {
		_ = q.PushFront(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for _, v := range q.All() {
			sum += v
		}
		_ = sum
	}
}
