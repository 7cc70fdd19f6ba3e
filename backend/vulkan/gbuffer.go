package vulkan

import (
	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/gbuffer"
)

// GBufferAllocator supplies the G-Buffer's color and depth targets as
// placeholder views; it allocates no Vulkan-like images for them.
type GBufferAllocator struct {
	backend *Backend
}

// NewGBufferAllocator returns a gbuffer.Allocator backed by b.
func NewGBufferAllocator(b *Backend) *GBufferAllocator {
	return &GBufferAllocator{backend: b}
}

func (a *GBufferAllocator) CreateColorTarget(_, _ uint32, _ gbuffer.Target) backend.RenderTargetView {
	// A full implementation allocates a dedicated VkImage/VkImageView
	// pair per target here, the same path newSwapchain uses for the
	// default color targets.
	return renderTargetView{}
}

func (a *GBufferAllocator) CreateDepthTarget(_, _ uint32) backend.DepthStencilView {
	return depthStencilView{}
}
