package bucketlist

import "iter"

// Dynamic is a heap-allocated list. Despite its name, it doesn't grow: the number of
// buckets is chosen once on initialization.
type Dynamic[B any] []B

// NewDynamic returns n empty (zero-value) buckets.
func NewDynamic[B any](n int) Dynamic[B] {
	return make(Dynamic[B], n)
}

// NewDynamicFunc returns n buckets, each produced by init. Useful for buckets, whose empty
// state isn't the zero value, e.g. with pre-allocated space.
func NewDynamicFunc[B any](n int, init func() B) Dynamic[B] {
	d := make(Dynamic[B], n)
	for i := range d {
		d[i] = init()
	}

	return d
}

func (d Dynamic[B]) Len() int {
	return len(d)
}

func (d Dynamic[B]) Search(start int, pred func(*B) bool) *B {
	return Search(d, start, pred)
}

func (d Dynamic[B]) All() iter.Seq[*B] {
	return iterate(d)
}
