package hasher

import (
	"encoding/binary"

	"github.com/indigo-web/primitivemap/internal/constraints"
	"github.com/zeebo/xxh3"
)

// Integer hashes integer keys by their 8-byte little-endian representation with XXH3.
// Negative values are sign-extended, so equal values of different widths hash equally.
type Integer[K constraints.Integer] struct {
	Modulo
}

func (Integer[K]) Hash(key K) uint64 {
	var buff [8]byte
	binary.LittleEndian.PutUint64(buff[:], uint64(key))

	return xxh3.Hash(buff[:])
}
