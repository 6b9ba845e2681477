package hwy

import (
	"fmt"

	"github.com/ajroetker/go-packed/internal/check"
)

// This file provides the offset-addressed memory and lane operations the
// packed iteration engine is built on. Each access comes as a pair: the
// checked form validates its arguments and panics with a descriptive
// message, then delegates to the unchecked form. The unchecked form does no
// validation of its own beyond Go's memory safety (assertions are compiled
// in with the hwydebug build tag), so it can be used inside loops whose
// bounds are already established.

// LoadAt loads a full vector from src[offset : offset+MaxLanes[T]()].
// It panics if the window does not fit in src.
func LoadAt[T Lanes](src []T, offset int) Vec[T] {
	n := MaxLanes[T]()
	if offset < 0 || offset+n > len(src) {
		panic(fmt.Sprintf("hwy: LoadAt window [%d, %d) out of range for length %d", offset, offset+n, len(src)))
	}
	return LoadAtUnchecked(src, offset)
}

// LoadAtUnchecked loads a full vector from src[offset:].
// The caller must ensure offset+MaxLanes[T]() <= len(src).
func LoadAtUnchecked[T Lanes](src []T, offset int) Vec[T] {
	n := MaxLanes[T]()
	if check.Enabled {
		check.Assert(offset >= 0 && offset+n <= len(src),
			"hwy: LoadAtUnchecked window [%d, %d) out of range for length %d", offset, offset+n, len(src))
	}
	data := make([]T, n)
	copy(data, src[offset:offset+n])
	return Vec[T]{data: data}
}

// StoreAt writes all lanes of v to dst[offset : offset+v.NumLanes()].
// It panics if the window does not fit in dst.
func StoreAt[T Lanes](v Vec[T], dst []T, offset int) {
	n := len(v.data)
	if offset < 0 || offset+n > len(dst) {
		panic(fmt.Sprintf("hwy: StoreAt window [%d, %d) out of range for length %d", offset, offset+n, len(dst)))
	}
	StoreAtUnchecked(v, dst, offset)
}

// StoreAtUnchecked writes all lanes of v to dst[offset:].
// The caller must ensure offset+v.NumLanes() <= len(dst).
func StoreAtUnchecked[T Lanes](v Vec[T], dst []T, offset int) {
	if check.Enabled {
		check.Assert(offset >= 0 && offset+len(v.data) <= len(dst),
			"hwy: StoreAtUnchecked window [%d, %d) out of range for length %d", offset, offset+len(v.data), len(dst))
	}
	copy(dst[offset:offset+len(v.data)], v.data)
}

// GetLane extracts a single lane value from the vector.
// It panics if idx is not a valid lane index.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		panic(fmt.Sprintf("hwy: lane %d out of range for %d lanes", idx, len(v.data)))
	}
	return GetLaneUnchecked(v, idx)
}

// GetLaneUnchecked extracts lane idx. The caller must ensure
// 0 <= idx < v.NumLanes().
func GetLaneUnchecked[T Lanes](v Vec[T], idx int) T {
	if check.Enabled {
		check.Assert(idx >= 0 && idx < len(v.data),
			"hwy: GetLaneUnchecked lane %d out of range for %d lanes", idx, len(v.data))
	}
	return v.data[idx]
}

// InsertLane returns a new vector with the value inserted at the given lane.
// It panics if idx is not a valid lane index.
func InsertLane[T Lanes](v Vec[T], idx int, val T) Vec[T] {
	if idx < 0 || idx >= len(v.data) {
		panic(fmt.Sprintf("hwy: lane %d out of range for %d lanes", idx, len(v.data)))
	}
	return InsertLaneUnchecked(v, idx, val)
}

// InsertLaneUnchecked returns a copy of v with lane idx replaced.
// The caller must ensure 0 <= idx < v.NumLanes().
func InsertLaneUnchecked[T Lanes](v Vec[T], idx int, val T) Vec[T] {
	if check.Enabled {
		check.Assert(idx >= 0 && idx < len(v.data),
			"hwy: InsertLaneUnchecked lane %d out of range for %d lanes", idx, len(v.data))
	}
	result := make([]T, len(v.data))
	copy(result, v.data)
	result[idx] = val
	return Vec[T]{data: result}
}

// MergePartitioned returns a vector whose lanes [0, split) come from a and
// whose lanes [split, n) come from b. split is clamped to [0, n].
//
//	MergePartitioned([0,0,0,0], [1,2,3,4], 3) -> [0,0,0,4]
//
// The packed tail protocol uses it to overlay the padding of a
// right-aligned tail with the default vector.
func MergePartitioned[T Lanes](a, b Vec[T], split int) Vec[T] {
	return IfThenElse(FirstN[T](split), a, b)
}

// SlideDownLanes shifts all lanes down (toward lower indices) by the given offset.
// Upper lanes are filled with zeros, lower lanes that slide out are discarded.
// [1,2,3,4,5,6,7,8] with offset=2 -> [3,4,5,6,7,8,0,0]
func SlideDownLanes[T Lanes](v Vec[T], offset int) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	offset = max(0, offset)
	if offset < n {
		copy(result[:n-offset], v.data[offset:])
	}
	return Vec[T]{data: result}
}
