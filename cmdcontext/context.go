// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package cmdcontext implements the API-neutral Render Command Context:
// the recording surface Passes use to submit draw work, independent of
// which backend.Backend is active underneath.
package cmdcontext

import (
	"fmt"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend"
)

// Context is the API-neutral render command recording surface described
// by the engine's command-context contract. It resolves named constants
// to their fixed slot, copies transient data into the frame's arenas, and
// validates that the resources a draw requires are bound before issuing
// it to the underlying backend.CommandList.
type Context struct {
	list   backend.CommandList
	arenas *render.FrameArenas

	hasVertexBuffer bool
	hasIndexBuffer  bool
	hasPipeline     bool
}

// New wraps list, recording transient uploads into arenas. Backend
// implementations construct one Context per CreateCommandContext call.
func New(list backend.CommandList, arenas *render.FrameArenas) *Context {
	return &Context{list: list, arenas: arenas}
}

// SetVertexBuffer uploads data into the frame's vertex arena and binds it
// at the given stride.
func (c *Context) SetVertexBuffer(data []byte, stride uint32) error {
	offset, wrapped := c.arenas.Vertex.Alloc(uint64(len(data)))
	if wrapped {
		render.Logger().Warn("vertex arena wrapped", "size", len(data))
	}
	copy(c.arenas.Vertex.Bytes()[offset:], data)
	c.list.BindVertexBuffer(offset, stride)
	c.hasVertexBuffer = true
	return nil
}

// SetIndexBuffer uploads data into the frame's index arena. wide32
// selects 32-bit indices; otherwise indices are 16-bit.
func (c *Context) SetIndexBuffer(data []byte, wide32 bool) error {
	offset, wrapped := c.arenas.Index.Alloc(uint64(len(data)))
	if wrapped {
		render.Logger().Warn("index arena wrapped", "size", len(data))
	}
	copy(c.arenas.Index.Bytes()[offset:], data)
	c.list.BindIndexBuffer(offset, wide32)
	c.hasIndexBuffer = true
	return nil
}

// SetConstantBuffer uploads data for the named constant into the frame's
// constant arena and binds it at that name's fixed slot. Returns
// ErrUnknownConstantName if name is outside the compile-time slot table.
func (c *Context) SetConstantBuffer(name string, data []byte) error {
	slot, ok := render.SlotFor(name)
	if !ok {
		render.Logger().Warn("unknown constant name, set skipped", "name", name)
		return fmt.Errorf("cmdcontext: %q: %w", name, render.ErrUnknownConstantName)
	}
	offset, wrapped := c.arenas.Constant.Alloc(uint64(len(data)))
	if wrapped {
		render.Logger().Warn("constant arena wrapped", "name", name, "size", len(data))
	}
	copy(c.arenas.Constant.Bytes()[offset:], data)
	c.list.BindConstant(slot, offset, uint32(len(data)))
	return nil
}

// SetRenderTargets binds the color attachments (up to four, for the
// GBuffer's MRT write in GeometryPass) and optional depth attachment
// subsequent draws and clears in this context apply to.
func (c *Context) SetRenderTargets(colorViews []backend.RenderTargetView, depth backend.DepthStencilView) {
	c.list.SetRenderTargets(colorViews, depth)
}

// ClearRenderTarget clears rtv to color.
func (c *Context) ClearRenderTarget(rtv backend.RenderTargetView, color [4]float32) {
	c.list.ClearRenderTarget(rtv, color)
}

// ClearDepthStencil clears dsv to depth.
func (c *Context) ClearDepthStencil(dsv backend.DepthStencilView, depth float32) {
	c.list.ClearDepthStencil(dsv, depth)
}

// SetShaderResource binds a texture or buffer view handle at slot.
func (c *Context) SetShaderResource(slot uint32, h render.Handle) {
	c.list.BindShaderResource(slot, h)
}

// SetSampler binds a sampler handle at slot.
func (c *Context) SetSampler(slot uint32, h render.Handle) {
	c.list.BindSampler(slot, h)
}

// SetViewport sets the rasterizer viewport. Returns ErrInvalidViewport for
// a non-positive width or height.
func (c *Context) SetViewport(v render.Viewport) error {
	if !v.Valid() {
		return render.ErrInvalidViewport
	}
	c.list.SetViewport(v)
	return nil
}

// SetScissorRect sets the scissor rect. Returns ErrInvalidScissor for a
// non-positive width or height.
func (c *Context) SetScissorRect(s render.ScissorRect) error {
	if !s.Valid() {
		return render.ErrInvalidScissor
	}
	c.list.SetScissor(s)
	return nil
}

// Draw issues a non-indexed draw call. If no vertex buffer has been set
// this context, the draw is logged and skipped and ErrResourceNotBound is
// returned.
func (c *Context) Draw(vertexCount, instanceCount, firstVertex uint32) error {
	if !c.hasVertexBuffer {
		render.Logger().Warn("draw skipped: vertex buffer not bound")
		return fmt.Errorf("cmdcontext: Draw: %w", render.ErrResourceNotBound)
	}
	c.list.Draw(vertexCount, instanceCount, firstVertex)
	return nil
}

// DrawIndexed issues an indexed draw call. If no vertex or index buffer
// has been set this context, the draw is logged and skipped and
// ErrResourceNotBound is returned.
func (c *Context) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32) error {
	if !c.hasVertexBuffer || !c.hasIndexBuffer {
		render.Logger().Warn("indexed draw skipped: vertex or index buffer not bound")
		return fmt.Errorf("cmdcontext: DrawIndexed: %w", render.ErrResourceNotBound)
	}
	c.list.DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex)
	return nil
}
