package primitivemap

import (
	"github.com/indigo-web/primitivemap/bucket"
	"github.com/indigo-web/primitivemap/bucketlist"
	"github.com/indigo-web/primitivemap/config"
	"github.com/indigo-web/primitivemap/hasher"
)

type (
	// Vec is the balanced default: a heap-allocated list of small-inline chaining buckets.
	Vec[K comparable, V any] = Map[
		K, V,
		bucket.Small[K, V], *bucket.Small[K, V],
		bucketlist.Dynamic[bucket.Small[K, V]],
		hasher.Default[K],
	]

	// Chained is a heap-allocated list of plain growable chaining buckets.
	Chained[K comparable, V any] = Map[
		K, V,
		bucket.Vec[K, V], *bucket.Vec[K, V],
		bucketlist.Dynamic[bucket.Vec[K, V]],
		hasher.Default[K],
	]

	// Array64 is an array of small-inline buckets. The array itself doesn't grow, but the
	// buckets may extend onto the heap, so the capacity is unbounded.
	Array64[K comparable, V any] = Map[
		K, V,
		bucket.Small[K, V], *bucket.Small[K, V],
		*bucketlist.Array64[bucket.Small[K, V]],
		hasher.Default[K],
	]

	// Linear64 is a linear probing map over an array of 64 single-slot buckets. It never
	// allocates after construction and holds at most 64 pairs.
	Linear64[K comparable, V any] = Map[
		K, V,
		bucket.Slot[K, V], *bucket.Slot[K, V],
		*bucketlist.Array64[bucket.Slot[K, V]],
		hasher.Default[K],
	]

	// Linear1024 is just like Linear64, but for 1024 pairs.
	Linear1024[K comparable, V any] = Map[
		K, V,
		bucket.Slot[K, V], *bucket.Slot[K, V],
		*bucketlist.Array1024[bucket.Slot[K, V]],
		hasher.Default[K],
	]
)

// NewVec returns a Vec map with n buckets. Non-positive n falls back to the default
// buckets count.
func NewVec[K comparable, V any](n int) *Vec[K, V] {
	if n <= 0 {
		n = config.Default().Buckets.Count
	}

	return WithBuckets[K, V, bucket.Small[K, V], *bucket.Small[K, V]](
		bucketlist.NewDynamic[bucket.Small[K, V]](n),
	)
}

// DefaultVec returns a Vec map with the default buckets count.
func DefaultVec[K comparable, V any]() *Vec[K, V] {
	return NewVec[K, V](0)
}

// NewChained returns a Chained map, sized and tuned by the config. Non-positive buckets
// count falls back to the default one, just like in NewVec.
func NewChained[K comparable, V any](cfg *config.Config) *Chained[K, V] {
	count := cfg.Buckets.Count
	if count <= 0 {
		count = config.Default().Buckets.Count
	}

	prealloc := max(cfg.Buckets.Prealloc, 0)
	buckets := bucketlist.NewDynamicFunc(count, func() bucket.Vec[K, V] {
		return bucket.NewVec[K, V](prealloc)
	})

	return WithBuckets[K, V, bucket.Vec[K, V], *bucket.Vec[K, V]](buckets).Tune(cfg)
}

// NewArray64 returns an Array64 map.
func NewArray64[K comparable, V any]() *Array64[K, V] {
	return WithBuckets[K, V, bucket.Small[K, V], *bucket.Small[K, V]](
		new(bucketlist.Array64[bucket.Small[K, V]]),
	)
}

// NewLinear64 returns a Linear64 map. In order to avoid even the single allocation of the
// array, own it and pass a pointer to WithLinearProbing instead.
func NewLinear64[K comparable, V any]() *Linear64[K, V] {
	return WithLinearProbing[K, V](new(bucketlist.Array64[bucket.Slot[K, V]]))
}

// NewLinear1024 returns a Linear1024 map.
func NewLinear1024[K comparable, V any]() *Linear1024[K, V] {
	return WithLinearProbing[K, V](new(bucketlist.Array1024[bucket.Slot[K, V]]))
}
