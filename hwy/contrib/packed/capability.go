package packed

import "github.com/ajroetker/go-packed/hwy"

// Sized is implemented by anything with a scalar length and a vector shape.
type Sized interface {
	// Width returns the number of lanes per vector.
	Width() int
	// Size returns the size of one scalar in bytes.
	Size() int
	// ScalarLen returns the total length, measured in scalars.
	ScalarLen() int
}

// VectorLen returns the number of full vectors in s.
func VectorLen(s Sized) int {
	return s.ScalarLen() / s.Width()
}

// Array is a random-access blob of scalars that can be loaded as vectors.
type Array[T hwy.Lanes] interface {
	Sized

	// Load returns the vector starting at scalar offset. It panics unless
	// offset+Width() <= ScalarLen().
	Load(offset int) hwy.Vec[T]
	// LoadUnchecked is Load without the bounds validation.
	LoadUnchecked(offset int) hwy.Vec[T]
	// LoadScalar returns the scalar at offset. It panics if offset is out of range.
	LoadScalar(offset int) T
	// LoadScalarUnchecked is LoadScalar without the bounds validation.
	LoadScalarUnchecked(offset int) T
}

// ArrayMut is an Array that can also be stored to.
type ArrayMut[T hwy.Lanes] interface {
	Array[T]

	Store(v hwy.Vec[T], offset int)
	StoreUnchecked(v hwy.Vec[T], offset int)
	StoreScalar(s T, offset int)
	StoreScalarUnchecked(s T, offset int)
}

// Iterable is a cursor over a Sized source that yields full vectors.
type Iterable[T hwy.Lanes] interface {
	Sized

	// ScalarPos returns the cursor position, measured in scalars.
	ScalarPos() int
	// Advance moves the cursor forward by amount scalars. Callers other
	// than this package's combinators must not move it past ScalarLen().
	Advance(amount int)
	// Finalize moves the cursor to ScalarLen().
	Finalize()
	// Default returns the vector used to pad the tail.
	Default() hwy.Vec[T]
	// Next returns the next full vector, or false once fewer than Width()
	// scalars remain.
	Next() (hwy.Vec[T], bool)
}

// Iterator is an Iterable that can also produce the partial tail vector.
type Iterator[T hwy.Lanes] interface {
	Iterable[T]

	// End returns the remaining scalars packed into one right-aligned
	// vector, padded with Default() in its low lanes, together with the
	// number of padding lanes. It returns false if no scalars remain.
	// It must be called at most once per traversal, after Next is
	// exhausted; it leaves the cursor at ScalarLen().
	End() (v hwy.Vec[T], emptyAmt int, ok bool)
}

// IteratorMut is an Iterator over mutable storage.
type IteratorMut[T hwy.Lanes] interface {
	Iterator[T]

	// ForEach replaces every vector, including the tail, with fn applied
	// to it. Scalars beyond the logical length are never written.
	ForEach(fn func(hwy.Vec[T]) hwy.Vec[T])
}

// RandomAccess is an Iterable whose remaining scalars can also be read
// directly, which is what Unpack needs.
type RandomAccess[T hwy.Lanes] interface {
	Iterable[T]
	Array[T]
}

// VectorPos returns the cursor position of it, measured in whole vectors.
func VectorPos[T hwy.Lanes](it Iterable[T]) int {
	return it.ScalarPos() / it.Width()
}

func remaining[T hwy.Lanes](it Iterable[T]) int {
	return it.ScalarLen() - it.ScalarPos()
}
