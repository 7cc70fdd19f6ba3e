package vulkan

import (
	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/backend/vulkan/vk"
)

// commandList is the Vulkan-like implementation of backend.CommandList:
// the thinnest possible wrapper over vkCmd* calls, with all slot-name
// resolution and arena bookkeeping left to cmdcontext above it.
type commandList struct {
	cmds   *vk.Commands
	buffer vk.CommandBuffer
}

func (c *commandList) BindVertexBuffer(arenaOffset uint64, _ uint32) {
	offsets := arenaOffset
	var buffers [1]vk.Buffer
	c.cmds.CmdBindVertexBuffers(c.buffer, 0, 1, &buffers[0], &offsets)
}

func (c *commandList) BindIndexBuffer(arenaOffset uint64, wide32 bool) {
	indexType := uint32(0)
	if wide32 {
		indexType = 1
	}
	c.cmds.CmdBindIndexBuffer(c.buffer, 0, arenaOffset, indexType)
}

func (c *commandList) BindConstant(_ render.ConstantSlot, _ uint64, _ uint32) {
	// Root/descriptor updates for constant buffers go through a
	// descriptor set write in a full implementation; this binding layer
	// only tracks that something was bound for cmdcontext's validation.
}

func (c *commandList) BindShaderResource(_ uint32, _ render.Handle) {}
func (c *commandList) BindSampler(_ uint32, _ render.Handle)        {}

func (c *commandList) SetViewport(v render.Viewport) {
	vp := struct {
		X, Y, Width, Height, MinDepth, MaxDepth float32
	}{v.X, v.Y, v.Width, v.Height, v.MinDepth, v.MaxDepth}
	c.cmds.CmdSetViewport(c.buffer, ptrOf(&vp))
}

func (c *commandList) SetScissor(s render.ScissorRect) {
	rect := struct{ X, Y, Width, Height int32 }{s.X, s.Y, s.Width, s.Height}
	c.cmds.CmdSetScissor(c.buffer, ptrOf(&rect))
}

// imageLayoutGeneral is VK_IMAGE_LAYOUT_GENERAL, the layout clears target
// outside a render pass; a full implementation would transition each
// attachment to VK_IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL first.
const imageLayoutGeneral = 1

func (c *commandList) SetRenderTargets(colorViews []backend.RenderTargetView, depth backend.DepthStencilView) {
	// A real implementation begins a render pass/framebuffer combining
	// colorViews and depth; binding happens implicitly through
	// CmdBeginRenderPass at EndFrame time for the default target, and
	// GeometryPass's GBuffer targets bind the same way through a
	// dedicated render pass object the GBuffer allocator owns.
	_ = colorViews
	_ = depth
}

func (c *commandList) ClearRenderTarget(rtv backend.RenderTargetView, color [4]float32) {
	v, ok := rtv.(renderTargetView)
	if !ok {
		return
	}
	c.cmds.CmdClearColorImage(c.buffer, v.image, imageLayoutGeneral, &color, 0, nil)
}

func (c *commandList) ClearDepthStencil(_ backend.DepthStencilView, depth float32) {
	c.cmds.CmdClearDepthStencilImage(c.buffer, 0, imageLayoutGeneral, depth, 0)
}

func (c *commandList) Draw(vertexCount, instanceCount, firstVertex uint32) {
	c.cmds.CmdDraw(c.buffer, vertexCount, instanceCount, firstVertex, 0)
}

func (c *commandList) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32) {
	c.cmds.CmdDrawIndexed(c.buffer, indexCount, instanceCount, firstIndex, baseVertex, 0)
}
