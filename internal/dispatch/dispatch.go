// Package dispatch abstracts the compute backend that turns a batch of
// work-item indices into keypair search attempts behind a uniform
// interface, keeping GPU API binding layers (Metal/Vulkan/WebGPU) out of
// this package entirely. Dispatcher is that interface; cpu.go is the one
// concrete backend this repository ships. A GPU backend would satisfy the
// same interface from behind a build tag; see gpu_stub.go for the
// unconditional fallback when one isn't compiled in.
package dispatch

import (
	"context"
	"errors"

	"github.com/davidzita/grind/internal/kernel"
	"github.com/davidzita/grind/internal/pattern"
)

// ErrNoGPU is returned by a Dispatcher's Dispatch when no GPU backend is
// available.
var ErrNoGPU = errors.New("dispatch: no GPU backend available")

// Dispatcher runs one batch of batch_size work items, with work-item
// indices 0..batch_size-1, against m, and returns the matching result that
// claimed the dispatch's single result slot — at most one winner per
// dispatch. It also reports the attempt count the dispatch contributes,
// which is always batch_size regardless of whether a match was found
// (work items skipped after an early exit still count).
type Dispatcher interface {
	Name() string
	Dispatch(ctx context.Context, hostSeed0, hostSeed1 uint64, batchSize uint64, m *pattern.Matcher) (DispatchResult, error)
}

// DispatchResult is what the host observes after awaiting one dispatch.
type DispatchResult struct {
	Attempts uint64
	Match    kernel.Result
	Found    bool
}
