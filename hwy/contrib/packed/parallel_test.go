package packed

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-packed/hwy"
	"github.com/ajroetker/go-packed/hwy/contrib/workerpool"
)

func TestParallelTransform(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	w := hwy.MaxLanes[float32]()
	two := hwy.Set[float32](2)
	for _, n := range []int{0, 1, w - 1, w, 17*w + 3, 1000} {
		data := ascending[float32](n)
		ParallelTransform(pool, data, hwy.Zero[float32](), func(v hwy.Vec[float32]) hwy.Vec[float32] {
			return hwy.Mul(v, two)
		})
		want := lo.Map(ascending[float32](n), func(x float32, _ int) float32 { return 2 * x })
		assert.Equal(t, want, data, "n=%d", n)
	}
}

func TestParallelTransformClosedPool(t *testing.T) {
	pool := workerpool.New(2)
	pool.Close()

	data := ascending[int32](37)
	ParallelTransform(pool, data, hwy.Zero[int32](), func(v hwy.Vec[int32]) hwy.Vec[int32] {
		return hwy.Sub(v, v)
	})
	assert.Equal(t, make([]int32, 37), data)
}

func TestParallelReduce(t *testing.T) {
	zero := hwy.Zero[float64]()
	start := func() hwy.Vec[float64] { return zero }
	for _, parts := range []int{1, 3, 8} {
		for _, n := range []int{0, 5, 64, 1001} {
			data := ascending[float64](n)
			acc, err := ParallelReduce(context.Background(), data, zero, parts, start, hwy.Add[float64], hwy.Add[float64])
			require.NoError(t, err)

			seq := Reduce[float64](FromSlice(data, zero), zero, hwy.Add[float64])
			assert.Equal(t, hwy.ReduceSum(seq), hwy.ReduceSum(acc), "parts=%d n=%d", parts, n)
		}
	}
}

func TestParallelReduceScalarAccumulator(t *testing.T) {
	data := ascending[int64](300)
	zero := hwy.Zero[int64]()
	sum, err := ParallelReduce(context.Background(), data, zero, 4,
		func() int64 { return 0 },
		func(acc int64, v hwy.Vec[int64]) int64 { return acc + hwy.ReduceSum(v) },
		func(a, b int64) int64 { return a + b })
	require.NoError(t, err)
	assert.Equal(t, int64(300*301/2), sum)
}

func TestParallelReduceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	zero := hwy.Zero[float32]()
	_, err := ParallelReduce(ctx, ascending[float32](100), zero, 4,
		func() hwy.Vec[float32] { return zero }, hwy.Add[float32], hwy.Add[float32])
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkParallelTransform(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()
	data := ascending[float32](1 << 16)
	pad := hwy.Zero[float32]()
	one := hwy.Set[float32](1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParallelTransform(pool, data, pad, func(v hwy.Vec[float32]) hwy.Vec[float32] {
			return hwy.Add(v, one)
		})
	}
}
