//go:build !gpu

package dispatch

import (
	"context"

	"github.com/davidzita/grind/internal/pattern"
)

// GPU is the GPU-backed Dispatcher. This build carries no Metal/Vulkan/
// WebGPU binding layer, so GPU.Dispatch always reports ErrNoGPU. A real
// backend would live behind the `gpu` build tag, implementing the same
// interface with cgo bindings wrapping device handles.
type GPU struct{}

// NewGPU returns the no-op GPU dispatcher for this build.
func NewGPU() *GPU { return &GPU{} }

func (g *GPU) Name() string { return "gpu" }

func (g *GPU) Dispatch(ctx context.Context, hostSeed0, hostSeed1 uint64, batchSize uint64, m *pattern.Matcher) (DispatchResult, error) {
	return DispatchResult{}, ErrNoGPU
}
