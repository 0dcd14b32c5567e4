package bucket

import "iter"

// Vec is a chaining bucket backed by a growable slice. It is never full.
type Vec[K comparable, V any] struct {
	pairs []Pair[K, V]
}

// NewVec returns an empty bucket with space for prealloc pairs reserved.
func NewVec[K comparable, V any](prealloc int) Vec[K, V] {
	return Vec[K, V]{
		pairs: make([]Pair[K, V], 0, prealloc),
	}
}

func (v *Vec[K, V]) Insert(key K, value V) (old V, replaced bool) {
	if i := indexOf(v.pairs, key); i != -1 {
		old, replaced = v.pairs[i].Value, true
		v.pairs = swapRemove(v.pairs, i)
	}

	v.pairs = append(v.pairs, Pair[K, V]{Key: key, Value: value})

	return old, replaced
}

func (v *Vec[K, V]) Get(key K) (value V, found bool) {
	if i := indexOf(v.pairs, key); i != -1 {
		return v.pairs[i].Value, true
	}

	return value, false
}

func (v *Vec[K, V]) Ref(key K) *V {
	if i := indexOf(v.pairs, key); i != -1 {
		return &v.pairs[i].Value
	}

	return nil
}

func (v *Vec[K, V]) Full(K) bool {
	return false
}

func (v *Vec[K, V]) Len() int {
	return len(v.pairs)
}

func (v *Vec[K, V]) All() iter.Seq2[K, V] {
	return iterate(v.pairs)
}

// Expose exposes the underlying pairs slice.
func (v *Vec[K, V]) Expose() []Pair[K, V] {
	return v.pairs
}
