package packed

import (
	"github.com/samber/lo"

	"github.com/ajroetker/go-packed/hwy"
)

// ascending returns [1, 2, ..., n] as lanes of type T.
func ascending[T hwy.Lanes](n int) []T {
	return lo.Times(n, func(i int) T { return T(i + 1) })
}

// lengths covers the empty buffer, buffers shorter than one vector, exact
// multiples and every remainder up to four vectors for lane type T.
func lengths[T hwy.Lanes]() []int {
	return lo.Range(4*hwy.MaxLanes[T]() + 4)
}

// sliceSource is a ScalarSource without random access.
type sliceSource[T any] struct {
	data []T
}

func newSliceSource[T any](data []T) *sliceSource[T] {
	return &sliceSource[T]{data: data}
}

func (s *sliceSource[T]) Next() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}
	x := s.data[0]
	s.data = s.data[1:]
	return x, true
}

func (s *sliceSource[T]) Len() int { return len(s.data) }
