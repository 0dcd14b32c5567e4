package bucket

import "iter"

// Pair is a single stored entry.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Bucket is a storage unit for one or more colliding pairs. Every bucket stores at most
// a single pair per key. Zero value of every implementation must be an empty bucket.
type Bucket[K comparable, V any] interface {
	// Insert replaces the pair of the key, if any, returning the old value. Capacity
	// isn't checked here, so Full must be consulted before.
	Insert(key K, value V) (old V, replaced bool)
	// Get returns the value stored under the key.
	Get(key K) (value V, found bool)
	// Ref returns a pointer to the value stored under the key, or nil. The pointer is
	// valid until the next insertion into the bucket.
	Ref(key K) *V
	// Full reports whether the key can't be inserted. It must be false whenever the
	// key is already stored in the bucket.
	Full(key K) bool
	// Len returns the number of stored pairs.
	Len() int
	// All iterates over the stored pairs in no particular order.
	All() iter.Seq2[K, V]
}

// Ptr is satisfied by the pointer to a bucket type B. Bucket lists own buckets by value,
// so methods are called on pointers to their elements.
type Ptr[K comparable, V any, B any] interface {
	*B
	Bucket[K, V]
}

func indexOf[K comparable, V any](pairs []Pair[K, V], key K) int {
	for i, pair := range pairs {
		if pair.Key == key {
			return i
		}
	}

	return -1
}

// swapRemove removes the pair at i by moving the last one onto its place. Order among the
// rest isn't preserved, but buckets have none anyway.
func swapRemove[K comparable, V any](pairs []Pair[K, V], i int) []Pair[K, V] {
	last := len(pairs) - 1
	pairs[i] = pairs[last]
	// zero the tail so the removed value can be collected
	pairs[last] = Pair[K, V]{}

	return pairs[:last]
}

func iterate[K comparable, V any](pairs []Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, pair := range pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}
