//go:build windows

package dx12

import (
	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/backend/dx12/d3d12"
)

// commandList is the D3D12-like implementation of backend.CommandList.
// Constant buffers bind at root descriptor tables b0..b3, matching the
// fixed ViewProjection/World/BaseColor/MaterialParams slot table; index
// buffers are bound with a 16/32-bit width flag derived from wide32.
type commandList struct {
	viewport d3d12.Viewport
	scissor  d3d12.Rect
	vbv      d3d12.VertexBufferView
	ibv      d3d12.IndexBufferView
}

func (c *commandList) BindVertexBuffer(arenaOffset uint64, stride uint32) {
	// IASetVertexBuffers(0, 1, &c.vbv) in a full implementation, once
	// arenaOffset is resolved against the vertex arena's GPU address.
	c.vbv = d3d12.VertexBufferView{BufferLocation: arenaOffset, StrideInBytes: stride}
}

func (c *commandList) BindIndexBuffer(arenaOffset uint64, wide32 bool) {
	format := uint32(57) // DXGI_FORMAT_R16_UINT
	if wide32 {
		format = 42 // DXGI_FORMAT_R32_UINT
	}
	// IASetIndexBuffer(&c.ibv) in a full implementation.
	c.ibv = d3d12.IndexBufferView{BufferLocation: arenaOffset, Format: format}
}

func (c *commandList) BindConstant(slot render.ConstantSlot, arenaOffset uint64, size uint32) {
	// SetGraphicsRootConstantBufferView at register b<slot>, where
	// arenaOffset is already 256-byte aligned by the constant arena.
	_ = slot
	_ = arenaOffset
	_ = size
}

func (c *commandList) BindShaderResource(_ uint32, _ render.Handle) {}
func (c *commandList) BindSampler(_ uint32, _ render.Handle)        {}

func (c *commandList) SetViewport(v render.Viewport) {
	c.viewport = d3d12.Viewport{
		TopLeftX: v.X, TopLeftY: v.Y, Width: v.Width, Height: v.Height,
		MinDepth: v.MinDepth, MaxDepth: v.MaxDepth,
	}
}

func (c *commandList) SetScissor(s render.ScissorRect) {
	c.scissor = d3d12.Rect{Left: s.X, Top: s.Y, Right: s.X + s.Width, Bottom: s.Y + s.Height}
}

// SetRenderTargets records an OMSetRenderTargets call against the RTV
// handles colorViews names; a full implementation resolves each view to
// its CPU descriptor handle in the default/GBuffer RTV heap.
func (c *commandList) SetRenderTargets(colorViews []backend.RenderTargetView, depth backend.DepthStencilView) {
	_ = colorViews
	_ = depth
}

func (c *commandList) ClearRenderTarget(_ backend.RenderTargetView, _ [4]float32) {
	// ClearRenderTargetView(rtvHandle, color, 0, nil) in a full
	// implementation, once renderTargetView carries a descriptor handle.
}

func (c *commandList) ClearDepthStencil(_ backend.DepthStencilView, _ float32) {
	// ClearDepthStencilView(dsvHandle, D3D12_CLEAR_FLAG_DEPTH, depth, 0, 0, nil).
}

func (c *commandList) Draw(vertexCount, instanceCount, firstVertex uint32) {}

func (c *commandList) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32) {}
