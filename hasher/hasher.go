// Package hasher provides strategies of turning keys into bucket list addresses. All the
// hashers are zero-sized and stateless, so a map only carries one as a type parameter
// and calls methods on its zero value.
package hasher

import "math/bits"

// Hasher maps keys to hash values and hash values to addresses. Both must be pure
// functions of their inputs, and equal keys must always have equal hashes.
type Hasher[K any] interface {
	Hash(key K) uint64
	// Compress maps the hash into [0, n). n is always positive.
	Compress(hash uint64, n int) int
}

// Modulo compresses by the remainder of division. Works for any list length, but
// relies on low bits of the hash being well mixed.
type Modulo struct{}

func (Modulo) Compress(hash uint64, n int) int {
	return int(hash % uint64(n))
}

// FastRange compresses by multiplying the hash by n and keeping the high half of the
// product (see Lemire, "A fast alternative to the modulo reduction"). Avoids division and
// relies on the high bits instead.
type FastRange struct{}

func (FastRange) Compress(hash uint64, n int) int {
	hi, _ := bits.Mul64(hash, uint64(n))
	return int(hi)
}
