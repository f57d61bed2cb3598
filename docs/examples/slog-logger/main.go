package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/maypok86/deque"
	"github.com/maypok86/deque/plugin/pslog"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	// Cap the ring buffer at 8 slots, that is 7 elements
	rb := deque.Must[int](&deque.Options{
		InitialCapacity: 4,
		MaximumCapacity: 8,
		Logger:          pslog.New(logger), // Refused growth is logged as a warning
	})

	for i := 0; i < 7; i++ {
		if err := rb.PushBack(i); err != nil {
			panic(err)
		}
	}

	// The eighth element does not fit and the ring buffer is left unchanged
	if err := rb.PushBack(7); !errors.Is(err, deque.ErrAllocationFailure) {
		panic("incorrect err")
	}
	if rb.Len() != 7 {
		panic("incorrect length")
	}
}
