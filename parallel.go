package antclust

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ParallelFor executes task for every index in [start, end) using fork-join
// parallelism. The range is split into at most workers contiguous equal-size
// chunks; all but the last run on background goroutines and the calling
// goroutine executes the last chunk inline. ParallelFor returns only after
// every chunk has finished.
//
// The first error returned by any chunk (or a panic inside one, converted to
// an error) is returned after the join; remaining chunks still run to
// completion. A zero-length range performs no task invocations. If workers
// <= 1, or the range is too small to fill more than one chunk, the whole
// range runs inline on the calling goroutine.
func ParallelFor(start, end, workers int, task func(i int) error) error {
	n := end - start
	if n <= 0 {
		return nil
	}
	if workers <= 1 || n == 1 {
		return runChunk(start, end, task)
	}

	chunkSize := (n + workers - 1) / workers
	chunks := (n + chunkSize - 1) / chunkSize

	var g errgroup.Group
	for c := 0; c < chunks-1; c++ {
		lo := start + c*chunkSize
		hi := lo + chunkSize
		g.Go(func() error {
			return runChunk(lo, hi, task)
		})
	}

	// The calling goroutine takes the final chunk, then joins the rest.
	err := runChunk(start+(chunks-1)*chunkSize, end, task)
	if werr := g.Wait(); err == nil {
		err = werr
	}
	return err
}

// ForEach executes task for every element of items with the same chunking,
// error propagation and join semantics as ParallelFor.
func ForEach[T any](items []T, workers int, task func(item T) error) error {
	return ParallelFor(0, len(items), workers, func(i int) error {
		return task(items[i])
	})
}

func runChunk(lo, hi int, task func(i int) error) error {
	for i := lo; i < hi; i++ {
		if err := runTask(task, i); err != nil {
			return err
		}
	}
	return nil
}

// runTask invokes task for one index, converting a panic into an error so it
// surfaces at the join point instead of tearing down the process from a
// worker goroutine.
func runTask(task func(i int) error, i int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("antclust: task panicked at index %d: %v", i, r)
		}
	}()
	return task(i)
}
