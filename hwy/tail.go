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

package hwy

// AlignedSize rounds up size to the next multiple of vector width.
// This is the buffer length needed to store every vector of a size-element
// sequence verbatim, including the padding of its last partial vector.
func AlignedSize[T Lanes](size int) int {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return size
	}
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// EmptyLanes returns the number of padding lanes in the last vector of a
// size-element sequence: 0 when size is a multiple of the vector width,
// otherwise width - size%width.
//
//	// float32 with 4 lanes
//	EmptyLanes[float32](10) == 2  // [x x x x][x x x x][_ _ x x]
func EmptyLanes[T Lanes](size int) int {
	return AlignedSize[T](size) - size
}
