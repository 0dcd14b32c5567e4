// Package primitivemap provides an associative array composed of three strategies: the
// bucket, storing colliding pairs; the bucket list, laying the buckets out and probing
// them; and the hasher, turning keys into bucket list addresses. Depending on the chosen
// strategies, the very same map implements either separate chaining over heap-growing
// buckets, or allocation-free linear probing over a fixed-size array.
//
// Most users want one of the presets: NewVec for general purposes, NewLinear64 and
// NewLinear1024 for bounded, allocation-free maps.
package primitivemap

import (
	"fmt"
	"iter"

	"github.com/indigo-web/primitivemap/bucket"
	"github.com/indigo-web/primitivemap/bucketlist"
	"github.com/indigo-web/primitivemap/config"
	"github.com/indigo-web/primitivemap/errors"
	"github.com/indigo-web/primitivemap/hasher"
	"github.com/rs/zerolog"
)

// Map is a hash map, parametrized by key and value types, bucket type B (and PB, a pointer
// to it, which actually implements the bucket), bucket list type L and hasher H.
//
// The map isn't thread-safe. Concurrent access may lead to UB.
type Map[
	K comparable,
	V any,
	B any,
	PB bucket.Ptr[K, V, B],
	L bucketlist.List[B],
	H hasher.Hasher[K],
] struct {
	buckets L
	len     int
	log     zerolog.Logger
}

// Custom returns a map over the already initialized buckets. The hasher argument serves
// type inference only, as hashers are stateless. Buckets must be empty: a pair placed by
// the caller may sit away from its search sequence, so a later insertion of the same key
// would duplicate it. Panics if the bucket list is empty or any bucket isn't.
func Custom[
	K comparable,
	V any,
	B any,
	PB bucket.Ptr[K, V, B],
	L bucketlist.List[B],
	H hasher.Hasher[K],
](buckets L, _ H) *Map[K, V, B, PB, L, H] {
	if buckets.Len() == 0 {
		panic(fmt.Errorf("primitivemap: custom: %w", errors.ErrNoBuckets))
	}

	for b := range buckets.All() {
		if PB(b).Len() != 0 {
			panic(fmt.Errorf("primitivemap: custom: %w", errors.ErrBucketsNotEmpty))
		}
	}

	return &Map[K, V, B, PB, L, H]{
		buckets: buckets,
		log:     zerolog.Nop(),
	}
}

// WithBuckets returns a map over the already initialized buckets with the default hasher.
func WithBuckets[
	K comparable,
	V any,
	B any,
	PB bucket.Ptr[K, V, B],
	L bucketlist.List[B],
](buckets L) *Map[K, V, B, PB, L, hasher.Default[K]] {
	return Custom[K, V, B, PB](buckets, hasher.Default[K]{})
}

// WithLinearProbing returns a linear probing map over the already initialized single-slot
// buckets with the default hasher. Total capacity is bounded by the number of buckets.
func WithLinearProbing[
	K comparable,
	V any,
	L bucketlist.List[bucket.Slot[K, V]],
](buckets L) *Map[K, V, bucket.Slot[K, V], *bucket.Slot[K, V], L, hasher.Default[K]] {
	return WithBuckets[K, V, bucket.Slot[K, V], *bucket.Slot[K, V]](buckets)
}

// Tune applies the config to the map. Only the logger is taken, as the bucket-related
// settings make sense only on construction.
func (m *Map[K, V, B, PB, L, H]) Tune(cfg *config.Config) *Map[K, V, B, PB, L, H] {
	m.log = cfg.Log.Logger
	m.log.Debug().
		Int("buckets", m.buckets.Len()).
		Int("len", m.len).
		Msg("primitivemap tuned")

	return m
}

// Insert stores the pair, replacing the value if the key is already presented. Returns
// errors.ErrCapacityExhausted if no bucket was able to take the pair. This never happens
// with chaining buckets.
func (m *Map[K, V, B, PB, L, H]) Insert(key K, value V) error {
	_, _, err := m.Swap(key, value)
	return err
}

// Swap is like Insert, but additionally returns the replaced value, if there was any.
func (m *Map[K, V, B, PB, L, H]) Swap(key K, value V) (old V, loaded bool, err error) {
	b := m.buckets.Search(m.address(key), func(b *B) bool {
		return !PB(b).Full(key)
	})
	if b == nil {
		m.log.Warn().
			Int("buckets", m.buckets.Len()).
			Int("len", m.len).
			Interface("key", key).
			Msg("primitivemap capacity is exhausted")

		return old, false, errors.ErrCapacityExhausted
	}

	old, loaded = PB(b).Insert(key, value)
	if !loaded {
		m.len++
	}

	return old, loaded, nil
}

// Get returns the value of the key and whether it was found.
func (m *Map[K, V, B, PB, L, H]) Get(key K) (value V, found bool) {
	m.buckets.Search(m.address(key), func(b *B) bool {
		value, found = PB(b).Get(key)
		return found
	})

	return value, found
}

// Ref returns a pointer to the value of the key, allowing in-place updates, or nil if the
// key isn't presented. The pointer is valid until the next insertion.
func (m *Map[K, V, B, PB, L, H]) Ref(key K) (ref *V) {
	m.buckets.Search(m.address(key), func(b *B) bool {
		ref = PB(b).Ref(key)
		return ref != nil
	})

	return ref
}

// Has indicates, whether there's an entry of the key.
func (m *Map[K, V, B, PB, L, H]) Has(key K) bool {
	_, found := m.Get(key)
	return found
}

// Len returns the number of stored pairs.
func (m *Map[K, V, B, PB, L, H]) Len() int {
	return m.len
}

// Buckets returns the number of buckets. It never changes.
func (m *Map[K, V, B, PB, L, H]) Buckets() int {
	return m.buckets.Len()
}

// All returns an iterator over the pairs. The order is unspecified. The map must not be
// modified during the iteration.
func (m *Map[K, V, B, PB, L, H]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for b := range m.buckets.All() {
			for key, value := range PB(b).All() {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

func (m *Map[K, V, B, PB, L, H]) address(key K) int {
	var h H
	return h.Compress(h.Hash(key), m.buckets.Len())
}
