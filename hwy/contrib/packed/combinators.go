package packed

import (
	"iter"

	"github.com/ajroetker/go-packed/hwy"
	"github.com/ajroetker/go-packed/internal/check"
)

// DoEach drives it to completion, calling fn on every full vector and then
// once on the tail, if there is one.
func DoEach[T hwy.Lanes](it Iterator[T], fn func(hwy.Vec[T])) {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fn(v)
	}
	if v, _, ok := it.End(); ok {
		fn(v)
	}
}

// Reduce folds fn over every full vector in cursor order, then over the
// tail, starting from start.
//
// The tail is padded with the producer's default vector, so the result
// depends on the vector width unless the default is the identity of fn
// (zero for a sum, one for a product):
//
//	// width 4, data = 10 x 2.0
//	Reduce(FromSlice(data, hwy.Zero[float32]()), hwy.Zero[float32](), add)
//	// -> [4 4 6 6]; hwy.ReduceSum of it is 20 for any width.
func Reduce[T hwy.Lanes, A any](it Iterator[T], start A, fn func(A, hwy.Vec[T]) A) A {
	acc := start
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		acc = fn(acc, v)
	}
	if v, _, ok := it.End(); ok {
		acc = fn(acc, v)
	}
	return acc
}

// Vectors returns a sequence over the remaining full vectors of it. The
// tail is left for End.
func Vectors[T hwy.Lanes](it Iterable[T]) iter.Seq[hwy.Vec[T]] {
	return func(yield func(hwy.Vec[T]) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns a sequence over every remaining vector of it paired with its
// number of empty lanes: zero for full vectors, then the tail's count.
// Stopping early leaves the tail unconsumed.
func All[T hwy.Lanes](it Iterator[T]) iter.Seq2[hwy.Vec[T], int] {
	return func(yield func(hwy.Vec[T], int) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v, 0) {
				return
			}
		}
		if v, n, ok := it.End(); ok {
			yield(v, n)
		}
	}
}

// Mapped lazily applies a function to the vectors of an inner producer.
// Lengths and positions are reported in units of the output lane type U.
type Mapped[T, U hwy.Lanes] struct {
	inner Iterator[T]
	fn    func(hwy.Vec[T]) hwy.Vec[U]
}

// Map returns a producer that applies fn to every vector of it, including
// the tail. fn may change the lane type, e.g. hwy.BitCast[uint8, int64].
//
// The tail's empty-lane count is rescaled as emptyAmt*Size(T)/Size(U).
// fn must keep the padding proportional to the lane size for that to be
// meaningful, and the product must divide evenly; bit reinterpretations
// always satisfy both. This is checked only in hwydebug builds.
func Map[T, U hwy.Lanes](it Iterator[T], fn func(hwy.Vec[T]) hwy.Vec[U]) *Mapped[T, U] {
	return &Mapped[T, U]{inner: it, fn: fn}
}

func (m *Mapped[T, U]) Width() int { return hwy.MaxLanes[U]() }
func (m *Mapped[T, U]) Size() int  { return hwy.SizeOf[U]() }

func (m *Mapped[T, U]) ScalarLen() int {
	return m.inner.ScalarLen() * m.inner.Size() / m.Size()
}

func (m *Mapped[T, U]) ScalarPos() int {
	return m.inner.ScalarPos() * m.inner.Size() / m.Size()
}

// Advance moves the inner cursor by the same number of bytes.
func (m *Mapped[T, U]) Advance(amount int) {
	m.inner.Advance(amount * m.Size() / m.inner.Size())
}

func (m *Mapped[T, U]) Finalize() { m.inner.Finalize() }

// Default returns a zero vector; fn is not invoked to derive one.
func (m *Mapped[T, U]) Default() hwy.Vec[U] { return hwy.Zero[U]() }

func (m *Mapped[T, U]) Next() (hwy.Vec[U], bool) {
	v, ok := m.inner.Next()
	if !ok {
		return hwy.Vec[U]{}, false
	}
	return m.fn(v), true
}

func (m *Mapped[T, U]) End() (hwy.Vec[U], int, bool) {
	v, n, ok := m.inner.End()
	if !ok {
		return hwy.Vec[U]{}, 0, false
	}
	bytes := n * m.inner.Size()
	if check.Enabled {
		check.Assert(bytes%m.Size() == 0,
			"packed: %d empty lanes of %d bytes do not scale to lanes of %d bytes", n, m.inner.Size(), m.Size())
	}
	return m.fn(v), bytes / m.Size(), true
}
