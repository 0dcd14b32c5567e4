package hasher

import "hash/maphash"

var seed = maphash.MakeSeed()

// Default hashes any comparable key. The seed is chosen once per process, so hashes
// are stable for the process lifetime, but must not be persisted.
type Default[K comparable] struct {
	Modulo
}

func (Default[K]) Hash(key K) uint64 {
	return maphash.Comparable(seed, key)
}
