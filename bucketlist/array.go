package bucketlist

import "iter"

// Array types are lists of compile-time size. They don't allocate by themselves and their
// zero value is ready to use, so when owned by a caller's variable, the whole map may live
// on the stack. Methods are defined on pointers, as arrays are copied by value.
type (
	Array16[B any]   [16]B
	Array64[B any]   [64]B
	Array256[B any]  [256]B
	Array1024[B any] [1024]B
)

func (a *Array16[B]) Len() int {
	return len(a)
}

func (a *Array16[B]) Search(start int, pred func(*B) bool) *B {
	return Search(a[:], start, pred)
}

func (a *Array16[B]) All() iter.Seq[*B] {
	return iterate(a[:])
}

func (a *Array64[B]) Len() int {
	return len(a)
}

func (a *Array64[B]) Search(start int, pred func(*B) bool) *B {
	return Search(a[:], start, pred)
}

func (a *Array64[B]) All() iter.Seq[*B] {
	return iterate(a[:])
}

func (a *Array256[B]) Len() int {
	return len(a)
}

func (a *Array256[B]) Search(start int, pred func(*B) bool) *B {
	return Search(a[:], start, pred)
}

func (a *Array256[B]) All() iter.Seq[*B] {
	return iterate(a[:])
}

func (a *Array1024[B]) Len() int {
	return len(a)
}

func (a *Array1024[B]) Search(start int, pred func(*B) bool) *B {
	return Search(a[:], start, pred)
}

func (a *Array1024[B]) All() iter.Seq[*B] {
	return iterate(a[:])
}
