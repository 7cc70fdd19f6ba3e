package noop

import (
	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/gbuffer"
)

// GBufferAllocator hands out inert placeholder render target/depth views
// for gbuffer.GBuffer, sufficient for testing the deferred pipeline
// without a real GPU.
type GBufferAllocator struct {
	nextIndex uint32
}

func (a *GBufferAllocator) CreateColorTarget(_, _ uint32, _ gbuffer.Target) backend.RenderTargetView {
	a.nextIndex++
	return rtv{index: a.nextIndex}
}

func (a *GBufferAllocator) CreateDepthTarget(_, _ uint32) backend.DepthStencilView {
	return dsv{}
}
