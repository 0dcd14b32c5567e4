package errors

import (
	"errors"
)

var (
	// ErrCapacityExhausted is returned on insertion when a whole search cycle found no
	// bucket able to take the pair. Only reachable with bounded buckets, e.g. linear probing
	// over a fixed-size list that is completely full.
	ErrCapacityExhausted = errors.New("capacity is exhausted")
	// ErrNoBuckets signals a bucket list of zero length, which can't be addressed.
	ErrNoBuckets = errors.New("bucket list has no buckets")
	// ErrBucketsNotEmpty signals a bucket list handed over with pairs already stored.
	ErrBucketsNotEmpty = errors.New("bucket list is not empty")
)
