package bucket

import "iter"

// Inline is how many pairs a Small bucket keeps without heap allocations.
const Inline = 4

// Small is a chaining bucket, storing its first Inline pairs in place. Inserting one more
// distinct key spills all of them into a heap-backed slice, which is used from then on.
// Just like Vec, it is never full.
type Small[K comparable, V any] struct {
	inline [Inline]Pair[K, V]
	n      int
	// heap is non-nil once spilled
	heap []Pair[K, V]
}

func (s *Small[K, V]) Insert(key K, value V) (old V, replaced bool) {
	pairs := s.pairs()
	if i := indexOf(pairs, key); i != -1 {
		old, replaced = pairs[i].Value, true
		s.truncate(swapRemove(pairs, i))
	}

	s.push(Pair[K, V]{Key: key, Value: value})

	return old, replaced
}

func (s *Small[K, V]) Get(key K) (value V, found bool) {
	pairs := s.pairs()
	if i := indexOf(pairs, key); i != -1 {
		return pairs[i].Value, true
	}

	return value, false
}

func (s *Small[K, V]) Ref(key K) *V {
	pairs := s.pairs()
	if i := indexOf(pairs, key); i != -1 {
		return &pairs[i].Value
	}

	return nil
}

func (s *Small[K, V]) Full(K) bool {
	return false
}

func (s *Small[K, V]) Len() int {
	return len(s.pairs())
}

func (s *Small[K, V]) All() iter.Seq2[K, V] {
	return iterate(s.pairs())
}

// Spilled reports whether the pairs were moved onto the heap.
func (s *Small[K, V]) Spilled() bool {
	return s.heap != nil
}

func (s *Small[K, V]) pairs() []Pair[K, V] {
	if s.Spilled() {
		return s.heap
	}

	return s.inline[:s.n]
}

func (s *Small[K, V]) truncate(pairs []Pair[K, V]) {
	if s.Spilled() {
		s.heap = pairs
		return
	}

	s.n = len(pairs)
}

func (s *Small[K, V]) push(pair Pair[K, V]) {
	switch {
	case s.Spilled():
		s.heap = append(s.heap, pair)
	case s.n < Inline:
		s.inline[s.n] = pair
		s.n++
	default:
		heap := make([]Pair[K, V], Inline, 2*Inline)
		copy(heap, s.inline[:])
		s.heap = append(heap, pair)
		s.inline = [Inline]Pair[K, V]{}
		s.n = 0
	}
}
