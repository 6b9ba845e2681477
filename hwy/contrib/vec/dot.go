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

// Dot returns the dot product of a and b over their common length.
//
// Example:
//
//	Dot([]float32{1, 2, 3}, []float32{4, 5, 6})  // 32
func Dot[T hwy.Lanes](a, b []T) T {
	n := min(len(a), len(b))
	zero := hwy.Zero[T]()
	ib := packed.FromSlice(b[:n], zero)
	acc := packed.Reduce[T](packed.FromSlice(a[:n], zero), zero, func(acc, va hwy.Vec[T]) hwy.Vec[T] {
		vb, ok := ib.Next()
		if !ok {
			vb, _, _ = ib.End()
		}
		return hwy.Add(acc, hwy.Mul(va, vb))
	})
	return hwy.ReduceSum(acc)
}

// SquaredNorm returns the sum of the squares of the elements of v.
func SquaredNorm[T hwy.Lanes](v []T) T {
	return Dot(v, v)
}
