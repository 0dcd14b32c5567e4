package constraints

type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Uint interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is any type, which can be losslessly widened into uint64 by a plain conversion.
type Integer interface {
	Int | Uint
}
