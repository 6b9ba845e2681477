package packed

import (
	"fmt"

	"github.com/ajroetker/go-packed/hwy"
	"github.com/ajroetker/go-packed/internal/check"
)

// Slice adapts a []T to ArrayMut. Arrays, growable slices and sub-slice
// views all go through it.
type Slice[T hwy.Lanes] []T

func (s Slice[T]) Width() int     { return hwy.MaxLanes[T]() }
func (s Slice[T]) Size() int      { return hwy.SizeOf[T]() }
func (s Slice[T]) ScalarLen() int { return len(s) }

func (s Slice[T]) Load(offset int) hwy.Vec[T] {
	return hwy.LoadAt([]T(s), offset)
}

func (s Slice[T]) LoadUnchecked(offset int) hwy.Vec[T] {
	return hwy.LoadAtUnchecked([]T(s), offset)
}

func (s Slice[T]) LoadScalar(offset int) T {
	if offset < 0 || offset >= len(s) {
		panic(fmt.Sprintf("packed: scalar offset %d out of range for length %d", offset, len(s)))
	}
	return s.LoadScalarUnchecked(offset)
}

func (s Slice[T]) LoadScalarUnchecked(offset int) T {
	if check.Enabled {
		check.Assert(offset >= 0 && offset < len(s), "packed: scalar offset %d out of range for length %d", offset, len(s))
	}
	return s[offset]
}

func (s Slice[T]) Store(v hwy.Vec[T], offset int) {
	hwy.StoreAt(v, []T(s), offset)
}

func (s Slice[T]) StoreUnchecked(v hwy.Vec[T], offset int) {
	hwy.StoreAtUnchecked(v, []T(s), offset)
}

func (s Slice[T]) StoreScalar(x T, offset int) {
	if offset < 0 || offset >= len(s) {
		panic(fmt.Sprintf("packed: scalar offset %d out of range for length %d", offset, len(s)))
	}
	s.StoreScalarUnchecked(x, offset)
}

func (s Slice[T]) StoreScalarUnchecked(x T, offset int) {
	if check.Enabled {
		check.Assert(offset >= 0 && offset < len(s), "packed: scalar offset %d out of range for length %d", offset, len(s))
	}
	s[offset] = x
}
