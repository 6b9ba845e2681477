// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package packed

import (
	"fmt"

	"github.com/ajroetker/go-packed/hwy"
	"github.com/ajroetker/go-packed/internal/check"
)

// Iter is the array-backed producer. Full vectors are read with a single
// unchecked load each, the bounds having been established by the cursor.
type Iter[T hwy.Lanes, A Array[T]] struct {
	position int
	data     A
	def      hwy.Vec[T]
}

// FromArray returns a producer over data that pads its tail with def.
// It panics if def does not have data.Width() lanes.
func FromArray[T hwy.Lanes, A Array[T]](data A, def hwy.Vec[T]) *Iter[T, A] {
	if def.NumLanes() != data.Width() {
		panic(fmt.Sprintf("packed: default vector has %d lanes, want %d", def.NumLanes(), data.Width()))
	}
	return &Iter[T, A]{data: data, def: def}
}

// FromSlice returns a producer over data that pads its tail with def.
func FromSlice[T hwy.Lanes](data []T, def hwy.Vec[T]) *Iter[T, Slice[T]] {
	return FromArray(Slice[T](data), def)
}

func (it *Iter[T, A]) Width() int          { return it.data.Width() }
func (it *Iter[T, A]) Size() int           { return it.data.Size() }
func (it *Iter[T, A]) ScalarLen() int      { return it.data.ScalarLen() }
func (it *Iter[T, A]) ScalarPos() int      { return it.position }
func (it *Iter[T, A]) Advance(amount int)  { it.position += amount }
func (it *Iter[T, A]) Finalize()           { it.position = it.data.ScalarLen() }
func (it *Iter[T, A]) Default() hwy.Vec[T] { return it.def }

// Next returns the vector at the cursor and advances by one width.
func (it *Iter[T, A]) Next() (hwy.Vec[T], bool) {
	w := it.data.Width()
	if it.position+w > it.data.ScalarLen() {
		return hwy.Vec[T]{}, false
	}
	v := it.data.LoadUnchecked(it.position)
	it.position += w
	return v, true
}

// End returns the right-aligned tail vector. It panics if a full vector
// still remains, since that means Next was not drained first.
func (it *Iter[T, A]) End() (hwy.Vec[T], int, bool) {
	n := it.data.ScalarLen()
	left := n - it.position
	if left <= 0 {
		return hwy.Vec[T]{}, 0, false
	}
	w := it.data.Width()
	if left >= w {
		panic(fmt.Sprintf("packed: End called with %d scalars left, width %d; drain Next first", left, w))
	}
	emptyAmt := w - left
	v := it.EndUnchecked(it.position, emptyAmt)
	it.Finalize()
	return v, emptyAmt, true
}

// NextUnchecked returns the full vector at offset without moving the
// cursor. The caller must ensure offset+Width() <= ScalarLen().
func (it *Iter[T, A]) NextUnchecked(offset int) hwy.Vec[T] {
	if check.Enabled {
		check.Assert(offset+it.data.Width() <= it.data.ScalarLen(),
			"packed: NextUnchecked offset %d past last full vector of %d scalars", offset, it.data.ScalarLen())
	}
	return it.data.LoadUnchecked(offset)
}

// EndUnchecked builds the tail vector for the scalars in
// [offset, ScalarLen()) without moving the cursor. The caller must ensure
// offset < ScalarLen() and emptyAmt == Width()-(ScalarLen()-offset).
//
// When the buffer holds at least one full vector, the tail is the last
// full-width window of the buffer with its first emptyAmt lanes replaced
// by the default vector, which keeps the load vectorized. Shorter buffers
// are read one scalar at a time.
func (it *Iter[T, A]) EndUnchecked(offset, emptyAmt int) hwy.Vec[T] {
	n, w := it.data.ScalarLen(), it.data.Width()
	if check.Enabled {
		check.Assert(offset < n, "packed: EndUnchecked offset %d with nothing left of %d scalars", offset, n)
		check.Assert(emptyAmt == w-(n-offset), "packed: EndUnchecked emptyAmt %d, want %d", emptyAmt, w-(n-offset))
	}
	if w <= n {
		return hwy.MergePartitioned(it.def, it.data.LoadUnchecked(n-w), emptyAmt)
	}
	lanes := it.def.Data()
	for i := offset; i < n; i++ {
		lanes[w-n+i] = it.data.LoadScalarUnchecked(i)
	}
	return hwy.Load(lanes)
}

// Iter delegates random access to its data so it can be unpacked.

func (it *Iter[T, A]) Load(offset int) hwy.Vec[T]          { return it.data.Load(offset) }
func (it *Iter[T, A]) LoadUnchecked(offset int) hwy.Vec[T] { return it.data.LoadUnchecked(offset) }
func (it *Iter[T, A]) LoadScalar(offset int) T             { return it.data.LoadScalar(offset) }
func (it *Iter[T, A]) LoadScalarUnchecked(offset int) T    { return it.data.LoadScalarUnchecked(offset) }

// Unpack returns a scalar view of the remaining elements of it.
func (it *Iter[T, A]) Unpack() *Unpacked[T, *Iter[T, A]] {
	return Unpack[T](it)
}

// MutIter is an array-backed producer over mutable storage.
type MutIter[T hwy.Lanes, A ArrayMut[T]] struct {
	Iter[T, A]
}

// FromArrayMut returns a mutable producer over data that pads its tail with def.
func FromArrayMut[T hwy.Lanes, A ArrayMut[T]](data A, def hwy.Vec[T]) *MutIter[T, A] {
	return &MutIter[T, A]{Iter: *FromArray(data, def)}
}

// FromSliceMut returns a mutable producer over data that pads its tail with def.
func FromSliceMut[T hwy.Lanes](data []T, def hwy.Vec[T]) *MutIter[T, Slice[T]] {
	return FromArrayMut(Slice[T](data), def)
}

// ForEach applies fn to every remaining vector and stores the result back
// where the vector was loaded from.
//
// The tail is handled so that nothing outside [ScalarPos(), ScalarLen())
// changes: if a full vector was stored before it, the tail is stored at
// its right-aligned offset and then the previous vector is stored again
// over the padding it clobbered. Otherwise only the populated lanes are
// written back, one scalar at a time.
func (it *MutIter[T, A]) ForEach(fn func(hwy.Vec[T]) hwy.Vec[T]) {
	w := it.Width()
	var last hwy.Vec[T]
	stored := false
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		v = fn(v)
		it.data.StoreUnchecked(v, it.position-w)
		last, stored = v, true
	}

	offset := it.position
	p, emptyAmt, ok := it.End()
	if !ok {
		return
	}
	p = fn(p)
	if stored {
		it.data.StoreUnchecked(p, offset-emptyAmt)
		it.data.StoreUnchecked(last, offset-w)
		return
	}
	for i := 0; i < w-emptyAmt; i++ {
		it.data.StoreScalarUnchecked(hwy.GetLaneUnchecked(p, i+emptyAmt), offset+i)
	}
}
