package main

import (
	"github.com/maypok86/deque/history"
)

func main() {
	// Remember the last two distinct request ids
	h, err := history.New[string](2)
	if err != nil {
		panic(err)
	}

	for _, id := range []string{"req-1", "req-2", "req-1"} {
		if _, err := h.Add(id); err != nil {
			panic(err)
		}
	}

	// req-1 was already remembered, so nothing has been forgotten yet
	if h.Len() != 2 || !h.Contains("req-1") {
		panic("req-1 should be remembered")
	}

	// A third distinct id pushes out the oldest one
	evicted, err := h.Add("req-3")
	if err != nil {
		panic(err)
	}
	if !evicted || h.Contains("req-1") {
		panic("req-1 should be forgotten")
	}
}
