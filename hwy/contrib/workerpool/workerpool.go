// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// running independent packed producers over partitions of one buffer.
// Workers are spawned once and reused, so partitioning a buffer costs a
// channel send per partition rather than a goroutine spawn.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Partition boundaries fall on multiples of the vector width, so only
//	// the last partition has a partial tail.
//	pool.ParallelForAligned(len(data), hwy.MaxLanes[float32](), func(start, end int) {
//	    packed.FromSliceMut(data[start:end], def).ForEach(fn)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// Chunk is the half-open index range [Start, End).
type Chunk struct {
	Start, End int
}

// Len returns End - Start.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// AlignedChunks splits [0, n) into at most parts contiguous chunks whose
// boundaries, except the final End, are multiples of align. Chunks are
// as even as alignment allows and never empty. align <= 0 is treated as 1.
//
//	AlignedChunks(10, 2, 4) -> [{0 8} {8 10}]
//	AlignedChunks(64, 4, 8) -> [{0 16} {16 32} {32 48} {48 64}]
func AlignedChunks(n, parts, align int) []Chunk {
	if n <= 0 {
		return nil
	}
	align = max(align, 1)
	parts = max(parts, 1)

	blocks := (n + align - 1) / align
	parts = min(parts, blocks)
	perPart := (blocks + parts - 1) / parts

	chunks := make([]Chunk, 0, parts)
	for start := 0; start < n; start += perPart * align {
		chunks = append(chunks, Chunk{Start: start, End: min(start+perPart*align, n)})
	}
	return chunks
}

// ParallelForAligned runs fn over the AlignedChunks of [0, n), one chunk
// per worker, and blocks until all complete.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	chunks := AlignedChunks(n, p.numWorkers, align)
	p.ParallelFor(len(chunks), func(lo, hi int) {
		for _, c := range chunks[lo:hi] {
			fn(c.Start, c.End)
		}
	})
}
