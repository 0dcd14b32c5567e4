package bucketlist

import "iter"

// List is an addressable sequence of buckets, owning them by value. Its length never
// changes after construction.
type List[B any] interface {
	// Len returns the number of buckets.
	Len() int
	// Search walks the buckets starting at the start address, returning the first one
	// satisfying the predicate or nil. See Search for details.
	Search(start int, pred func(*B) bool) *B
	// All iterates over pointers to every bucket in index order.
	All() iter.Seq[*B]
}

// Search scans the buckets forward from start, wrapping around the end, until a bucket
// satisfying the predicate is met. Every bucket is visited exactly once, so nil is
// returned after a full cycle of misses. This is the only search sequence: with
// never-full chaining buckets it degenerates to checking the start bucket only, with
// single-slot buckets it is linear probing.
func Search[B any](buckets []B, start int, pred func(*B) bool) *B {
	n := len(buckets)
	if n == 0 {
		return nil
	}

	start %= n
	if start < 0 {
		start += n
	}

	for i := start; i < n; i++ {
		if pred(&buckets[i]) {
			return &buckets[i]
		}
	}

	for i := 0; i < start; i++ {
		if pred(&buckets[i]) {
			return &buckets[i]
		}
	}

	return nil
}

func iterate[B any](buckets []B) iter.Seq[*B] {
	return func(yield func(*B) bool) {
		for i := range buckets {
			if !yield(&buckets[i]) {
				break
			}
		}
	}
}
