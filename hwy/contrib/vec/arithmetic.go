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

// Package vec provides element-wise slice arithmetic and reductions built
// on packed producers.
//
// Operations come in two variants:
//   - In-place: modify the destination slice directly (e.g., Add)
//   - Reductions: fold a slice to a scalar (e.g., Sum, Dot)
//
// Every function handles lengths that are not a multiple of the vector
// width through the packed tail protocol, so there is no scalar remainder
// loop.
package vec

import (
	"github.com/ajroetker/go-packed/hwy"
	"github.com/ajroetker/go-packed/hwy/contrib/packed"
)

// zipWith replaces dst[i] with op(dst[i], s[i]) for i < min(len(dst), len(s)).
//
// Both producers cover the same number of scalars, so the tail of s is
// right-aligned exactly like the tail of dst.
func zipWith[T hwy.Lanes](dst, s []T, op func(a, b hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(dst), len(s))
	if n == 0 {
		return
	}
	zero := hwy.Zero[T]()
	src := packed.FromSlice(s[:n], zero)
	packed.FromSliceMut(dst[:n], zero).ForEach(func(v hwy.Vec[T]) hwy.Vec[T] {
		o, ok := src.Next()
		if !ok {
			o, _, _ = src.End()
		}
		return op(v, o)
	})
}

// Add performs in-place element-wise addition: dst[i] += s[i].
//
// If the slices have different lengths, the operation uses the minimum length.
//
// Example:
//
//	dst := []float32{1, 2, 3, 4}
//	s := []float32{5, 6, 7, 8}
//	Add(dst, s)  // dst is now {6, 8, 10, 12}
func Add[T hwy.Lanes](dst, s []T) {
	zipWith(dst, s, hwy.Add[T])
}

// Sub performs in-place element-wise subtraction: dst[i] -= s[i].
func Sub[T hwy.Lanes](dst, s []T) {
	zipWith(dst, s, hwy.Sub[T])
}

// Mul performs in-place element-wise multiplication: dst[i] *= s[i].
func Mul[T hwy.Lanes](dst, s []T) {
	zipWith(dst, s, hwy.Mul[T])
}

// Scale multiplies every element of dst by c.
func Scale[T hwy.Lanes](c T, dst []T) {
	vc := hwy.Set(c)
	packed.FromSliceMut(dst, hwy.Zero[T]()).ForEach(func(v hwy.Vec[T]) hwy.Vec[T] {
		return hwy.Mul(v, vc)
	})
}

// AddConst adds c to every element of dst.
func AddConst[T hwy.Lanes](c T, dst []T) {
	vc := hwy.Set(c)
	packed.FromSliceMut(dst, hwy.Zero[T]()).ForEach(func(v hwy.Vec[T]) hwy.Vec[T] {
		return hwy.Add(v, vc)
	})
}
