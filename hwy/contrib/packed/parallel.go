package packed

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-packed/hwy"
	"github.com/ajroetker/go-packed/hwy/contrib/workerpool"
)

// The helpers below partition a buffer at multiples of the vector width
// and drive one independent producer per partition. Producers share no
// state, so partitions need no coordination beyond the final join.

// ParallelTransform applies fn in place to every vector of data, like
// FromSliceMut(data, def).ForEach(fn), spreading the partitions over pool.
// fn must be lane-wise for the result to match the sequential traversal.
func ParallelTransform[T hwy.Lanes](pool *workerpool.Pool, data []T, def hwy.Vec[T], fn func(hwy.Vec[T]) hwy.Vec[T]) {
	w := hwy.MaxLanes[T]()
	hwy.Logger().Debug("packed: parallel transform",
		"scalars", len(data), "width", w, "workers", pool.NumWorkers())
	pool.ParallelForAligned(len(data), w, func(start, end int) {
		FromSliceMut(data[start:end], def).ForEach(fn)
	})
}

// ParallelReduce reduces up to parts width-aligned partitions of data
// concurrently, each with Reduce(FromSlice(part, def), start(), fn), then
// folds the partial results in partition order with combine, starting
// from start().
//
// Only the last partition has a tail, so with def the identity of fn the
// result equals the sequential Reduce. If ctx is cancelled before every
// partition has started, the context's error is returned.
func ParallelReduce[T hwy.Lanes, A any](ctx context.Context, data []T, def hwy.Vec[T], parts int,
	start func() A, fn func(A, hwy.Vec[T]) A, combine func(A, A) A) (A, error) {
	chunks := workerpool.AlignedChunks(len(data), parts, hwy.MaxLanes[T]())
	hwy.Logger().Debug("packed: parallel reduce",
		"scalars", len(data), "partitions", len(chunks))

	partial := make([]A, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partial[i] = Reduce(FromSlice(data[c.Start:c.End], def), start(), fn)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var zero A
		return zero, err
	}

	acc := start()
	for _, p := range partial {
		acc = combine(acc, p)
	}
	return acc, nil
}
