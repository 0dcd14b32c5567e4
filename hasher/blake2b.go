package hasher

import (
	"crypto/rand"
	"encoding/binary"
	"hash"
	"sync"

	"github.com/indigo-web/utils/uf"
	"golang.org/x/crypto/blake2b"
)

var (
	secret = newSecret()
	// keyed states are costly to set up, so they are reused. Reset restores the keyed
	// state, so a pooled one hashes exactly like a fresh one.
	states = sync.Pool{
		New: func() any {
			return newState()
		},
	}
)

func newSecret() []byte {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}

	return key
}

func newState() hash.Hash {
	h, err := blake2b.New(8, secret)
	if err != nil {
		// only possible with a bad key or digest length, both of which are constant
		panic(err)
	}

	return h
}

// Blake2b hashes string keys with BLAKE2b keyed by a per-process secret. It is much slower
// than the rest, but the addresses of crafted keys can't be predicted from outside. Use it
// for keys coming from untrusted sources, where an attacker could otherwise pile them up in
// a single bucket.
type Blake2b[K ~string] struct {
	Modulo
}

func (Blake2b[K]) Hash(key K) uint64 {
	h := states.Get().(hash.Hash)
	h.Reset()
	_, _ = h.Write(uf.S2B(string(key)))

	var sum [8]byte
	value := binary.LittleEndian.Uint64(h.Sum(sum[:0]))
	states.Put(h)

	return value
}
