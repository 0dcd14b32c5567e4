package bucket

import "iter"

// Slot is a single-pair bucket used for open addressing.
type Slot[K comparable, V any] struct {
	pair     Pair[K, V]
	occupied bool
}

// Insert overwrites the slot unconditionally. Full must be checked before, otherwise
// a pair of a different key is lost.
func (s *Slot[K, V]) Insert(key K, value V) (old V, replaced bool) {
	if s.occupied && s.pair.Key == key {
		old, replaced = s.pair.Value, true
	}

	s.pair = Pair[K, V]{Key: key, Value: value}
	s.occupied = true

	return old, replaced
}

func (s *Slot[K, V]) Get(key K) (value V, found bool) {
	if s.occupied && s.pair.Key == key {
		return s.pair.Value, true
	}

	return value, false
}

func (s *Slot[K, V]) Ref(key K) *V {
	if s.occupied && s.pair.Key == key {
		return &s.pair.Value
	}

	return nil
}

// Full reports whether the slot is taken by another key. An empty slot or the one
// holding the same key accepts the insertion.
func (s *Slot[K, V]) Full(key K) bool {
	return s.occupied && s.pair.Key != key
}

func (s *Slot[K, V]) Len() int {
	if s.occupied {
		return 1
	}

	return 0
}

func (s *Slot[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if s.occupied {
			yield(s.pair.Key, s.pair.Value)
		}
	}
}
