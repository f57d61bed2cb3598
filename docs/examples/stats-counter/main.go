package main

import (
	"github.com/maypok86/deque"
	"github.com/maypok86/deque/stats"
)

func main() {
	// Create a new statistics counter
	counter := stats.NewCounter()

	// Initialize ring buffer with statistics recorder
	rb := deque.Must[int](&deque.Options{
		StatsRecorder: counter, // Attach stats collector to ring buffer
	})

	// Phase 1: Fill the ring buffer
	// -----------------------------
	// 16 elements need two doublings of the default block (8 -> 16 -> 32)
	for i := 0; i < 16; i++ {
		if err := rb.PushBack(i); err != nil {
			panic(err)
		}
	}

	// Phase 2: Drain the ring buffer
	// ------------------------------
	// The block is halved each time it becomes a quarter full (32 -> 16 -> 8 -> 4)
	for !rb.Empty() {
		if _, err := rb.PopFront(); err != nil {
			panic(err)
		}
	}

	// Phase 3: Verify statistics
	// --------------------------
	snapshot := counter.Snapshot()

	if snapshot.Grows() != 2 {
		panic("incorrect number of grows")
	}
	if snapshot.Shrinks() != 3 {
		panic("incorrect number of shrinks")
	}
	if rb.Cap() != 4 {
		panic("ring buffer should shrink to its minimum capacity")
	}
}
