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
	"unsafe"

	"github.com/dolthub/maphash"
	"github.com/zeebo/xxh3"
)

type hasher[K comparable] interface {
	hash(key K) uint64
}

// seededHasher uses a random per-process seed, so hashes differ between runs.
type seededHasher[K comparable] struct {
	h maphash.Hasher[K]
}

func newSeededHasher[K comparable]() seededHasher[K] {
	return seededHasher[K]{
		h: maphash.NewHasher[K](),
	}
}

func (sh seededHasher[K]) hash(key K) uint64 {
	return sh.h.Hash(key)
}

// stableHasher hashes the memory of the key with xxh3, so hashes are the same in every process.
//
// Strings are hashed by content. Any other key is hashed by its raw bytes, so pointers
// inside the key are hashed by address.
type stableHasher[K comparable] struct {
	keyIsString bool
	keySize     int
}

func newStableHasher[K comparable]() *stableHasher[K] {
	h := &stableHasher[K]{}

	var key K
	switch (any(key)).(type) {
	case string:
		h.keyIsString = true
	default:
		h.keySize = int(unsafe.Sizeof(key))
	}

	return h
}

func (h *stableHasher[K]) hash(key K) uint64 {
	var strKey string
	if h.keyIsString {
		strKey = *(*string)(unsafe.Pointer(&key))
	} else {
		strKey = *(*string)(unsafe.Pointer(&struct {
			data unsafe.Pointer
			len  int
		}{unsafe.Pointer(&key), h.keySize}))
	}

	return xxh3.HashString(strKey)
}
