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
	"iter"

	"github.com/ajroetker/go-packed/hwy"
)

// MaxUnroll is the largest batch Unroll accepts.
const MaxUnroll = 8

// Unrolled yields batches of up to ChunkLen() full vectors from a borrowed
// producer. The tail is not part of any batch; call End on the producer
// once the batches are exhausted.
type Unrolled[T hwy.Lanes] struct {
	it      Iterable[T]
	amt     int
	scratch [MaxUnroll]hwy.Vec[T]
}

// Unroll returns a batching view over it. It panics unless 1 <= amt <= MaxUnroll.
func Unroll[T hwy.Lanes](it Iterable[T], amt int) Unrolled[T] {
	if amt < 1 || amt > MaxUnroll {
		panic(fmt.Sprintf("packed: unroll amount %d not in [1, %d]", amt, MaxUnroll))
	}
	return Unrolled[T]{it: it, amt: amt}
}

// ChunkLen returns the batch size.
func (u *Unrolled[T]) ChunkLen() int {
	return u.amt
}

// ChunkPos returns the producer's position measured in whole batches.
func (u *Unrolled[T]) ChunkPos() int {
	return VectorPos(u.it) / u.amt
}

// Next returns the next batch. A batch shorter than ChunkLen() means the
// producer has run out of full vectors. The returned slice aliases
// internal storage and is only valid until the next call.
func (u *Unrolled[T]) Next() ([]hwy.Vec[T], bool) {
	i := 0
	for i < u.amt {
		v, ok := u.it.Next()
		if !ok {
			break
		}
		u.scratch[i] = v
		i++
	}
	if i == 0 {
		return nil, false
	}
	return u.scratch[:i], true
}

// All returns a sequence over the remaining batches.
func (u *Unrolled[T]) All() iter.Seq[[]hwy.Vec[T]] {
	return func(yield func([]hwy.Vec[T]) bool) {
		for batch, ok := u.Next(); ok; batch, ok = u.Next() {
			if !yield(batch) {
				return
			}
		}
	}
}

// Unpacked yields the scalars of a random-access producer one at a time,
// advancing the producer's cursor by one scalar per step.
type Unpacked[T hwy.Lanes, I RandomAccess[T]] struct {
	it I
}

// Unpack takes ownership of it and returns a scalar view of its remaining
// elements. Pack gives the producer back.
func Unpack[T hwy.Lanes, I RandomAccess[T]](it I) *Unpacked[T, I] {
	return &Unpacked[T, I]{it: it}
}

// Next returns the scalar at the cursor.
func (u *Unpacked[T, I]) Next() (T, bool) {
	pos := u.it.ScalarPos()
	if pos >= u.it.ScalarLen() {
		var zero T
		return zero, false
	}
	x := u.it.LoadScalarUnchecked(pos)
	u.it.Advance(1)
	return x, true
}

// All returns a sequence over the remaining scalars.
func (u *Unpacked[T, I]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x, ok := u.Next(); ok; x, ok = u.Next() {
			if !yield(x) {
				return
			}
		}
	}
}

// Pack relinquishes the view and returns the producer, positioned after
// the last scalar returned.
func (u *Unpacked[T, I]) Pack() I {
	return u.it
}
