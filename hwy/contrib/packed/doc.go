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

// Package packed iterates over contiguous scalar buffers as a sequence of
// fixed-width hwy.Vec values, handling the trailing partial vector (the
// tail) uniformly for every consumer.
//
// # Producers
//
// A producer owns a scalar cursor and a default vector used to pad the tail:
//   - Iter / MutIter: array-backed, random access (FromSlice, FromSliceMut, FromArray)
//   - Adapter: wraps an exact-length scalar sequence without random access (FromSource, FromSeq)
//   - Mapped: lazily applies a vector function, possibly changing the lane type (Map)
//   - Unrolled: yields batches of up to 8 vectors (Unroll)
//   - Unpacked: yields the underlying scalars one at a time (Unpack)
//
// # The tail protocol
//
// Next yields full vectors while position+width <= ScalarLen. After it is
// exhausted, End is called exactly once. If scalars remain it returns the
// tail vector and its number of empty lanes. Valid scalars occupy the high
// lanes and padding the low lanes (right alignment), so that array-backed
// producers can load the tail with one full-width load:
//
//	data:  [a b c d e f g h i j]   width 4
//	Next:  [a b c d]  [e f g h]
//	End:   [_ _ i j], empty=2      (_ comes from the default vector)
//
// DoEach, Reduce, ForEach, Fill and Collect all follow this protocol, so
// every consumer agrees on how the tail is represented.
//
// # Example
//
//	sum := packed.Reduce(packed.FromSlice(data, hwy.Zero[float32]()), hwy.Zero[float32](),
//	    func(acc, v hwy.Vec[float32]) hwy.Vec[float32] { return hwy.Add(acc, v) })
//	total := hwy.ReduceSum(sum)
//
// # Checked and unchecked operations
//
// Random access comes in pairs (Load / LoadUnchecked, End / EndUnchecked, ...).
// The checked form panics on a contract violation; the unchecked form
// assumes its preconditions hold and only verifies them when built with
// the hwydebug tag.
package packed
