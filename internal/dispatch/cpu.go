package dispatch

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/davidzita/grind/internal/kernel"
	"github.com/davidzita/grind/internal/pattern"
)

// CPU is the CPU fallback Dispatcher: a fixed-size worker pool, one task
// per sub-slice of the batch, sharing an atomic "found" flag for early
// exit. Workers keep no attempt counts of their own: the dispatch reports
// batchSize attempts whether or not workers stopped early. A single
// winning result is returned after the pool's WaitGroup join, the
// dispatcher's one designated suspension point.
type CPU struct {
	Workers int
}

// NewCPU returns a CPU dispatcher using the given worker count (the
// --threads flag's default is 64).
func NewCPU(workers int) *CPU {
	if workers <= 0 {
		workers = 64
	}
	return &CPU{Workers: workers}
}

func (c *CPU) Name() string { return "cpu" }

// Dispatch splits batchSize work items evenly across c.Workers goroutines.
// Work-item indices are global across the whole dispatch (0..batchSize-1)
// so that each index, combined with the per-dispatch host seed, yields a
// distinct kernel.Attempt seed regardless of worker count.
func (c *CPU) Dispatch(ctx context.Context, hostSeed0, hostSeed1 uint64, batchSize uint64, m *pattern.Matcher) (DispatchResult, error) {
	var found int32
	var winner kernel.Result
	var winnerOnce sync.Once

	var wg sync.WaitGroup
	perWorker := batchSize / uint64(c.Workers)
	remainder := batchSize % uint64(c.Workers)

	var start uint64
	for w := 0; w < c.Workers; w++ {
		count := perWorker
		if uint64(w) < remainder {
			count++
		}
		lo, hi := start, start+count
		start = hi

		wg.Add(1)
		go func(lo, hi uint64) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if atomic.LoadInt32(&found) != 0 {
					return
				}
				result, ok := kernel.Attempt(hostSeed0, hostSeed1, i, m)
				if !ok {
					continue
				}
				if atomic.CompareAndSwapInt32(&found, 0, 1) {
					winnerOnce.Do(func() { winner = result })
				}
				return
			}
		}(lo, hi)
	}
	wg.Wait()

	return DispatchResult{
		Attempts: batchSize,
		Match:    winner,
		Found:    found != 0,
	}, nil
}
