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
)

// Collect drains it into a new slice holding exactly its remaining
// scalars, in order.
func Collect[T hwy.Lanes](it Iterator[T]) []T {
	return Fill(it, make([]T, remaining[T](it)))
}

// Fill drains it into dst and returns the filled prefix, whose length is
// exactly the number of scalars remaining in it. It panics if dst is too
// short.
//
// Full vectors are stored as they come. The right-aligned tail is stored
// so that its last lane lands on the last scalar; the padding lanes this
// writes over are then restored by storing the previous vector again.
// Without a previous vector the tail is written one scalar at a time.
func Fill[T hwy.Lanes](it Iterator[T], dst []T) []T {
	need := remaining[T](it)
	if len(dst) < need {
		panic(fmt.Sprintf("packed: Fill destination has %d scalars, need %d", len(dst), need))
	}
	w := it.Width()
	offset := 0
	var last hwy.Vec[T]
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		hwy.StoreAtUnchecked(v, dst, offset)
		offset += w
		last = v
	}

	p, emptyAmt, ok := it.End()
	if !ok {
		return dst[:offset]
	}
	if offset > 0 {
		hwy.StoreAtUnchecked(p, dst, offset-emptyAmt)
		hwy.StoreAtUnchecked(last, dst, offset-w)
	} else {
		for i := 0; i < w-emptyAmt; i++ {
			dst[i] = hwy.GetLaneUnchecked(p, i+emptyAmt)
		}
	}
	return dst[:offset+w-emptyAmt]
}

// CollectAll drains it into a new slice whose length is the remaining
// scalar count rounded up to a multiple of Width(). The first
// ScalarLen()-ScalarPos() scalars are the data; the rest are zero.
func CollectAll[T hwy.Lanes](it Iterator[T]) []T {
	return FillAll(it, make([]T, alignedRemaining[T](it)))
}

// FillAll drains it into dst one whole vector at a time and returns the
// written prefix, which may extend up to Width()-1 scalars past the
// logical end. The tail's padding is moved past the data and zeroed, so
// truncating the result to the logical length gives the same scalars as
// Fill. It panics if dst cannot hold every vector.
func FillAll[T hwy.Lanes](it Iterator[T], dst []T) []T {
	need := alignedRemaining[T](it)
	if len(dst) < need {
		panic(fmt.Sprintf("packed: FillAll destination has %d scalars, need %d", len(dst), need))
	}
	w := it.Width()
	offset := 0
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		hwy.StoreAtUnchecked(v, dst, offset)
		offset += w
	}
	if p, emptyAmt, ok := it.End(); ok {
		hwy.StoreAtUnchecked(hwy.SlideDownLanes(p, emptyAmt), dst, offset)
		offset += w
	}
	return dst[:offset]
}

func alignedRemaining[T hwy.Lanes](it Iterable[T]) int {
	w := it.Width()
	return (remaining[T](it) + w - 1) / w * w
}
