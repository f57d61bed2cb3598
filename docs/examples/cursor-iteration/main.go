package main

import (
	"errors"

	"github.com/maypok86/deque"
)

func main() {
	rb := deque.Must[int](&deque.Options{InitialCapacity: 4})

	// Front pushes make the logical order differ from the physical one
	for i := 1; i <= 3; i++ {
		if err := rb.PushFront(i); err != nil {
			panic(err)
		}
	}

	// Walk from front to back and double every element in place
	for c := rb.Begin(); !c.Equal(rb.End()); c = c.Next() {
		c.Set(c.Value() * 2)
	}

	// Range over the ring buffer from back to front, indices stay logical
	want := []int{6, 4, 2}
	for i, v := range rb.Backward() {
		if v != want[i] {
			panic("incorrect value")
		}
	}

	// Random access through a cursor
	last := rb.Begin().Add(2)
	if last.Value() != 2 || rb.End().Distance(rb.Begin()) != 3 {
		panic("incorrect cursor arithmetic")
	}

	// A reallocation invalidates every cursor taken before it
	if err := rb.PushBack(8); err != nil {
		panic(err)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, deque.ErrInvalidatedCursor) {
			panic("stale cursor should panic with deque.ErrInvalidatedCursor")
		}
	}()
	_ = last.Value()
}
