package hasher

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// XXHash hashes string keys with XXH64.
type XXHash[K ~string] struct {
	Modulo
}

func (XXHash[K]) Hash(key K) uint64 {
	return xxhash.Sum64String(string(key))
}

// XXH3 hashes string keys with XXH3-64. Its high bits are good enough to use FastRange.
type XXH3[K ~string] struct {
	FastRange
}

func (XXH3[K]) Hash(key K) uint64 {
	return xxh3.HashString(string(key))
}
