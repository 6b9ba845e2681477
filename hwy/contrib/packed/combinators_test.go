package packed

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-packed/hwy"
)

func requireLittleEndian(t *testing.T) {
	t.Helper()
	if !hwy.IsLittleEndian() {
		t.Skip("lane order of BitCast is host byte order")
	}
}

func TestMapBitCastWidens(t *testing.T) {
	requireLittleEndian(t)
	data := []int64{1, 2, 3, 4, 5}
	m := Map(FromSlice(data, hwy.Zero[int64]()), hwy.BitCast[uint32, int64])

	assert.Equal(t, hwy.MaxLanes[uint32](), m.Width())
	assert.Equal(t, 4, m.Size())
	assert.Equal(t, 10, m.ScalarLen())
	assert.Equal(t, 0, m.ScalarPos())

	got := Collect[uint32](m)
	assert.Equal(t, []uint32{1, 0, 2, 0, 3, 0, 4, 0, 5, 0}, got)
	assert.Equal(t, 10, m.ScalarPos())
}

func TestMapEmptyLaneScaling(t *testing.T) {
	requireLittleEndian(t)
	w := hwy.MaxLanes[int64]()
	for _, n := range lengths[int64]() {
		if n%w == 0 {
			continue
		}
		inner := w - n%w

		var it Iterator[int64] = FromSlice(ascending[int64](n), hwy.Zero[int64]())
		drain := func(it Iterable[int64]) {
			for _, ok := it.Next(); ok; _, ok = it.Next() {
			}
		}

		x2 := Map(it, hwy.BitCast[int32, int64])
		drain(it)
		_, e, ok := x2.End()
		require.True(t, ok)
		assert.Equal(t, 2*inner, e, "x2 n=%d", n)

		it = FromSlice(ascending[int64](n), hwy.Zero[int64]())
		x4 := Map(it, hwy.BitCast[uint16, int64])
		drain(it)
		_, e, _ = x4.End()
		assert.Equal(t, 4*inner, e, "x4 n=%d", n)

		it = FromSlice(ascending[int64](n), hwy.Zero[int64]())
		x8 := Map(it, hwy.BitCast[int8, int64])
		drain(it)
		_, e, _ = x8.End()
		assert.Equal(t, 8*inner, e, "x8 n=%d", n)
	}
}

func TestMapBitCastByteExpansion(t *testing.T) {
	requireLittleEndian(t)
	for _, n := range lengths[uint64]() {
		data := ascending[uint64](n)
		got := Collect[uint8](Map(FromSlice(data, hwy.Zero[uint64]()), hwy.BitCast[uint8, uint64]))

		want := make([]uint8, 0, 8*n)
		for _, x := range data {
			want = binary.LittleEndian.AppendUint64(want, x)
		}
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("n=%d (-want +got):\n%s", n, diff)
		}
	}
}

func TestMapBitCastNarrows(t *testing.T) {
	requireLittleEndian(t)
	// Byte counts must be whole uint64 lanes, and so must the tail padding.
	for _, words := range lo.Range(2*hwy.MaxLanes[uint64]() + 3) {
		data := ascending[uint8](8 * words)
		m := Map(FromSlice(data, hwy.Zero[uint8]()), hwy.BitCast[uint64, uint8])
		require.Equal(t, words, m.ScalarLen())

		got := Collect[uint64](m)
		want := lo.Times(words, func(i int) uint64 {
			return binary.LittleEndian.Uint64(data[8*i:])
		})
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("words=%d (-want +got):\n%s", words, diff)
		}
	}
}

func TestMapArithmetic(t *testing.T) {
	three := hwy.Set[float64](3)
	for _, n := range lengths[float64]() {
		data := ascending[float64](n)
		got := Collect[float64](Map(FromSlice(data, hwy.Zero[float64]()), func(v hwy.Vec[float64]) hwy.Vec[float64] {
			return hwy.Mul(v, three)
		}))
		want := lo.Map(data, func(x float64, _ int) float64 { return 3 * x })
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("n=%d (-want +got):\n%s", n, diff)
		}
	}
}

func TestMapCallsFnOncePerVector(t *testing.T) {
	w := hwy.MaxLanes[int32]()
	n := 3*w + 1
	calls := 0
	m := Map(FromSource[int32](newSliceSource(ascending[int32](n)), hwy.Zero[int32]()),
		func(v hwy.Vec[int32]) hwy.Vec[int32] {
			calls++
			return v
		})
	DoEach[int32](m, func(hwy.Vec[int32]) {})
	assert.Equal(t, 4, calls)
}

func TestMapAdvance(t *testing.T) {
	requireLittleEndian(t)
	data := ascending[int64](6)
	inner := FromSlice(data, hwy.Zero[int64]())
	m := Map(inner, hwy.BitCast[uint32, int64])
	m.Advance(4)
	assert.Equal(t, 2, inner.ScalarPos())
	assert.Equal(t, 4, m.ScalarPos())
	assert.Equal(t, []uint32{3, 0, 4, 0, 5, 0, 6, 0}, Collect[uint32](m))
}

func TestMapDefault(t *testing.T) {
	m := Map(FromSlice(ascending[int64](3), hwy.Set[int64](9)), hwy.BitCast[uint32, int64])
	assert.Equal(t, hwy.Zero[uint32]().Data(), m.Default().Data())
}

func TestReduce(t *testing.T) {
	zero := hwy.Zero[float64]()
	for _, n := range lengths[float64]() {
		data := ascending[float64](n)
		acc := Reduce[float64](FromSlice(data, zero), zero, hwy.Add[float64])
		assert.Equal(t, lo.Sum(data), hwy.ReduceSum(acc), "n=%d", n)
	}
}

func TestReduceMaxWithIdentityPadding(t *testing.T) {
	// Padding with the smallest value keeps it out of the maximum.
	data := []int32{-5, -3, -9, -1, -8}
	pad := hwy.Set[int32](-1 << 31)
	acc := Reduce[int32](FromSlice(data, pad), pad, hwy.Max[int32])
	assert.Equal(t, int32(-1), hwy.ReduceMax(acc))
}

func TestDoEach(t *testing.T) {
	w := hwy.MaxLanes[uint32]()
	for _, n := range lengths[uint32]() {
		calls := 0
		DoEach[uint32](FromSlice(ascending[uint32](n), hwy.Zero[uint32]()), func(hwy.Vec[uint32]) { calls++ })
		assert.Equal(t, (n+w-1)/w, calls, "n=%d", n)
	}
}

func TestVectors(t *testing.T) {
	w := hwy.MaxLanes[float32]()
	n := 3*w + 2
	it := FromSlice(ascending[float32](n), hwy.Zero[float32]())
	count := 0
	for range Vectors[float32](it) {
		count++
	}
	assert.Equal(t, 3, count)
	_, emptyAmt, ok := it.End()
	require.True(t, ok, "Vectors must leave the tail")
	assert.Equal(t, w-2, emptyAmt)
}

func TestAll(t *testing.T) {
	w := hwy.MaxLanes[int16]()
	n := 2*w + 1
	var empties []int
	for _, emptyAmt := range All[int16](FromSlice(ascending[int16](n), hwy.Zero[int16]())) {
		empties = append(empties, emptyAmt)
	}
	assert.Equal(t, []int{0, 0, w - 1}, empties)
}

func TestAllStopsEarly(t *testing.T) {
	w := hwy.MaxLanes[int16]()
	it := FromSlice(ascending[int16](2*w+1), hwy.Zero[int16]())
	for range All[int16](it) {
		break
	}
	assert.Equal(t, w, it.ScalarPos())
}
