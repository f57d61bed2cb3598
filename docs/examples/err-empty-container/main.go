package main

import (
	"errors"

	"github.com/maypok86/deque"
)

func main() {
	// The zero value is an empty ring buffer ready to use
	var rb deque.RingBuffer[string]

	// Removing from an empty ring buffer reports deque.ErrEmptyContainer
	if _, err := rb.PopFront(); !errors.Is(err, deque.ErrEmptyContainer) {
		panic("incorrect err")
	}
	if _, err := rb.Back(); !errors.Is(err, deque.ErrEmptyContainer) {
		panic("incorrect err")
	}

	if err := rb.PushBack("a"); err != nil {
		panic(err)
	}

	// Checked access past the end reports deque.ErrOutOfRange
	if _, err := rb.At(1); !errors.Is(err, deque.ErrOutOfRange) {
		panic("incorrect err")
	}

	// Unchecked access past the end panics
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, deque.ErrOutOfRange) {
			panic("Get should panic with deque.ErrOutOfRange")
		}
	}()
	_ = rb.Get(1)
}
