package bucketlist

import (
	"fmt"
	"iter"

	"github.com/indigo-web/primitivemap/errors"
)

// Fixed is a list of run-time chosen, but unchangeable size. It is allocated exactly once.
// Prefer one of the Array types when the size is known in advance.
type Fixed[B any] struct {
	buckets []B
}

// NewFixed returns a list of n empty buckets. Panics if n isn't positive.
func NewFixed[B any](n int) *Fixed[B] {
	if n <= 0 {
		panic(fmt.Errorf("bucketlist: fixed list of size %d: %w", n, errors.ErrNoBuckets))
	}

	return &Fixed[B]{
		buckets: make([]B, n),
	}
}

func (f *Fixed[B]) Len() int {
	return len(f.buckets)
}

func (f *Fixed[B]) Search(start int, pred func(*B) bool) *B {
	return Search(f.buckets, start, pred)
}

func (f *Fixed[B]) All() iter.Seq[*B] {
	return iterate(f.buckets)
}
