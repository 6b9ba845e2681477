package packed

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-packed/hwy"
)

func TestAdapterRoundTrip(t *testing.T) {
	pad := hwy.Set[int16](-1)
	for _, n := range lengths[int16]() {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			data := ascending[int16](n)

			got := Collect[int16](FromSource[int16](newSliceSource(data), pad))
			if diff := cmp.Diff(data, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("FromSource (-want +got):\n%s", diff)
			}

			got = Collect[int16](FromSeq(slices.Values(data), n, pad))
			if diff := cmp.Diff(data, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("FromSeq (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdapterTailOrder(t *testing.T) {
	w := hwy.MaxLanes[int32]()
	a := FromSource[int32](newSliceSource([]int32{7, 8, 9}), hwy.Set[int32](-1))

	v, emptyAmt, ok := a.End()
	require.True(t, ok)
	require.Equal(t, w-3, emptyAmt)
	lanes := v.Data()
	assert.Equal(t, []int32{7, 8, 9}, lanes[w-3:], "tail must keep source order")
	for i := range emptyAmt {
		assert.Equal(t, int32(-1), lanes[i])
	}
}

func TestAdapterTailMatchesIter(t *testing.T) {
	w := hwy.MaxLanes[float32]()
	pad := hwy.Set[float32](0.5)
	for _, n := range lengths[float32]() {
		if n%w == 0 {
			continue
		}
		data := ascending[float32](n)
		a := FromSource[float32](newSliceSource(data), pad)
		it := FromSlice(data, pad)
		for range n / w {
			va, ok := a.Next()
			require.True(t, ok)
			vi, _ := it.Next()
			assert.Equal(t, vi.Data(), va.Data())
		}

		va, ea, ok := a.End()
		require.True(t, ok, "n=%d", n)
		vi, ei, _ := it.End()
		assert.Equal(t, ei, ea, "n=%d", n)
		assert.Equal(t, vi.Data(), va.Data(), "n=%d", n)
		assert.Equal(t, n, a.ScalarPos())
	}
}

func TestAdapterAdvance(t *testing.T) {
	w := hwy.MaxLanes[uint8]()
	n := 2*w + 5
	data := ascending[uint8](n)
	src := newSliceSource(data)
	a := FromSource[uint8](src, hwy.Zero[uint8]())

	a.Advance(w + 1)
	assert.Equal(t, w+1, a.ScalarPos())
	assert.Equal(t, n-w-1, src.Len(), "Advance must consume the skipped scalars")

	got := Collect[uint8](a)
	assert.Equal(t, data[w+1:], got)
}

func TestAdapterFinalize(t *testing.T) {
	src := newSliceSource(ascending[int64](9))
	a := FromSource[int64](src, hwy.Zero[int64]())
	a.Finalize()
	assert.Equal(t, 9, a.ScalarPos())
	assert.Equal(t, 0, src.Len())
	_, _, ok := a.End()
	assert.False(t, ok)
}

func TestAdapterShortSourcePanics(t *testing.T) {
	a := FromSeq(slices.Values([]float64{1, 2}), 5, hwy.Zero[float64]())
	defer a.Close()
	require.Panics(t, func() { Collect[float64](a) })
}

func TestAdapterCloseStopsSequence(t *testing.T) {
	w := hwy.MaxLanes[int32]()
	stopped := false
	seq := func(yield func(int32) bool) {
		defer func() { stopped = true }()
		for i := int32(0); ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	a := FromSeq(seq, 10*w, hwy.Zero[int32]())
	v, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, int32(0), hwy.GetLane(v, 0))
	a.Close()
	a.Close()
	assert.True(t, stopped)
}

func TestAdapterWrongDefault(t *testing.T) {
	require.Panics(t, func() {
		FromSource[uint64](newSliceSource([]uint64{1}), hwy.Vec[uint64]{})
	})
}

func BenchmarkAdapter(b *testing.B) {
	data := ascending[float32](4099)
	pad := hwy.Zero[float32]()
	zero := hwy.Zero[float32]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Reduce[float32](FromSeq(slices.Values(data), len(data), pad), zero, hwy.Add[float32])
	}
}
