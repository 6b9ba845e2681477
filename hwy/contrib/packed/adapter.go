package packed

import (
	"fmt"
	"iter"

	"github.com/ajroetker/go-packed/hwy"
)

// ScalarSource is an exact-length sequence of scalars without random access.
type ScalarSource[T any] interface {
	// Next returns the next scalar, or false when the source is exhausted.
	Next() (T, bool)
	// Len returns the number of scalars Next will still produce.
	Len() int
}

// Adapter packs a ScalarSource into vectors. Every lane is filled by a
// separate call to the source, so this is the slow path; prefer an Iter
// whenever the data is in memory.
type Adapter[T hwy.Lanes] struct {
	src      ScalarSource[T]
	release  func()
	scratch  []T
	def      hwy.Vec[T]
	position int
	length   int
}

// FromSource returns a producer over the scalars src will yield, padding
// the tail with def.
func FromSource[T hwy.Lanes](src ScalarSource[T], def hwy.Vec[T]) *Adapter[T] {
	w := hwy.MaxLanes[T]()
	if def.NumLanes() != w {
		panic(fmt.Sprintf("packed: default vector has %d lanes, want %d", def.NumLanes(), w))
	}
	return &Adapter[T]{
		src:     src,
		scratch: make([]T, w),
		def:     def,
		length:  src.Len(),
	}
}

// FromSeq returns a producer over the first n scalars of seq. The sequence
// is pulled lazily; it is released when the tail has been consumed, or by
// Close if the traversal is abandoned earlier.
func FromSeq[T hwy.Lanes](seq iter.Seq[T], n int, def hwy.Vec[T]) *Adapter[T] {
	next, stop := iter.Pull(seq)
	a := FromSource[T](&pullSource[T]{next: next, left: n}, def)
	a.release = stop
	return a
}

type pullSource[T any] struct {
	next func() (T, bool)
	left int
}

func (p *pullSource[T]) Next() (T, bool) {
	if p.left <= 0 {
		var zero T
		return zero, false
	}
	p.left--
	return p.next()
}

func (p *pullSource[T]) Len() int { return p.left }

func (a *Adapter[T]) Width() int          { return len(a.scratch) }
func (a *Adapter[T]) Size() int           { return hwy.SizeOf[T]() }
func (a *Adapter[T]) ScalarLen() int      { return a.length }
func (a *Adapter[T]) ScalarPos() int      { return a.position }
func (a *Adapter[T]) Default() hwy.Vec[T] { return a.def }

// Advance skips amount scalars of the source.
func (a *Adapter[T]) Advance(amount int) {
	for range amount {
		a.pull()
	}
	a.position += amount
}

func (a *Adapter[T]) Finalize() {
	a.Advance(a.length - a.position)
	a.Close()
}

// Close releases the underlying sequence of a FromSeq adapter. It is a
// no-op for adapters built with FromSource, and safe to call repeatedly.
func (a *Adapter[T]) Close() {
	if a.release != nil {
		a.release()
		a.release = nil
	}
}

func (a *Adapter[T]) pull() T {
	x, ok := a.src.Next()
	if !ok {
		panic(fmt.Sprintf("packed: scalar source ended at %d of %d scalars", a.position, a.length))
	}
	return x
}

// Next fills a vector lane by lane from the source.
func (a *Adapter[T]) Next() (hwy.Vec[T], bool) {
	w := len(a.scratch)
	if a.position+w > a.length {
		return hwy.Vec[T]{}, false
	}
	for lane := range a.scratch {
		a.scratch[lane] = a.pull()
	}
	a.position += w
	return hwy.Load(a.scratch), true
}

// End packs the remaining scalars into the high lanes of the default
// vector, in source order, so the tail has the same right-aligned layout
// as one loaded by Iter:
//
//	remaining a b c, width 4  ->  [_ a b c], empty=1
//
// Lanes are not filled from the last lane backwards, which would give
// [_ c b a] and break the Collect round trip.
func (a *Adapter[T]) End() (hwy.Vec[T], int, bool) {
	left := a.length - a.position
	if left <= 0 {
		a.Close()
		return hwy.Vec[T]{}, 0, false
	}
	w := len(a.scratch)
	if left >= w {
		panic(fmt.Sprintf("packed: End called with %d scalars left, width %d; drain Next first", left, w))
	}
	emptyAmt := w - left
	lanes := a.def.Data()
	for lane := emptyAmt; lane < w; lane++ {
		lanes[lane] = a.pull()
		a.position++
	}
	a.Close()
	return hwy.Load(lanes), emptyAmt, true
}
