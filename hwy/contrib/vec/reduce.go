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

package vec

import (
	"github.com/ajroetker/go-packed/hwy"
	"github.com/ajroetker/go-packed/hwy/contrib/packed"
)

// Sum returns the sum of all elements of v, or zero for an empty slice.
//
// Example:
//
//	Sum([]float32{1, 2, 3, 4, 5})  // 15
func Sum[T hwy.Lanes](v []T) T {
	zero := hwy.Zero[T]()
	return hwy.ReduceSum(packed.Reduce[T](packed.FromSlice(v, zero), zero, hwy.Add[T]))
}

// Max returns the largest element of v.
// Panics if v is empty.
func Max[T hwy.Lanes](v []T) T {
	if len(v) == 0 {
		panic("vec: Max called on empty slice")
	}
	// Padding with an element of v cannot change the result.
	pad := hwy.Set(v[0])
	return hwy.ReduceMax(packed.Reduce[T](packed.FromSlice(v, pad), pad, hwy.Max[T]))
}

// Min returns the smallest element of v.
// Panics if v is empty.
func Min[T hwy.Lanes](v []T) T {
	if len(v) == 0 {
		panic("vec: Min called on empty slice")
	}
	pad := hwy.Set(v[0])
	return hwy.ReduceMin(packed.Reduce[T](packed.FromSlice(v, pad), pad, hwy.Min[T]))
}
