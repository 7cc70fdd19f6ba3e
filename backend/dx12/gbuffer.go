//go:build windows

package dx12

import (
	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/gbuffer"
)

// GBufferAllocator supplies the G-Buffer's color and depth targets as
// placeholder views; it allocates no D3D12-like resources for them.
type GBufferAllocator struct {
	backend *Backend
}

// NewGBufferAllocator returns a gbuffer.Allocator backed by b.
func NewGBufferAllocator(b *Backend) *GBufferAllocator {
	return &GBufferAllocator{backend: b}
}

func (a *GBufferAllocator) CreateColorTarget(_, _ uint32, _ gbuffer.Target) backend.RenderTargetView {
	return renderTargetView{}
}

func (a *GBufferAllocator) CreateDepthTarget(_, _ uint32) backend.DepthStencilView {
	return depthStencilView{}
}
