// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package gbuffer models the deferred-shading G-Buffer: four color
// targets plus a shared depth buffer, owned by the deferred logical
// pipeline and written by the geometry pass, read by the lighting pass.
package gbuffer

import (
	"fmt"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/cmdcontext"
)

// Target identifies one of the G-Buffer's attachments.
type Target int

const (
	Position Target = iota
	Normal
	Albedo
	Emissive
	Depth
)

func (t Target) String() string {
	switch t {
	case Position:
		return "Position"
	case Normal:
		return "Normal"
	case Albedo:
		return "Albedo"
	case Emissive:
		return "Emissive"
	case Depth:
		return "Depth"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// Allocator creates the render target views a GBuffer needs, sized to
// width x height. Backends implement this to back a GBuffer with their
// own textures; backend/noop's allocator hands out inert placeholder
// views.
type Allocator interface {
	CreateColorTarget(width, height uint32, target Target) backend.RenderTargetView
	CreateDepthTarget(width, height uint32) backend.DepthStencilView
}

// GBuffer owns the four color attachments and shared depth attachment of
// the deferred shading geometry pass.
type GBuffer struct {
	alloc         Allocator
	width, height uint32

	position backend.RenderTargetView
	normal   backend.RenderTargetView
	albedo   backend.RenderTargetView
	emissive backend.RenderTargetView
	depth    backend.DepthStencilView
}

// New constructs a GBuffer sized to width x height using alloc.
func New(alloc Allocator, width, height uint32) *GBuffer {
	g := &GBuffer{alloc: alloc}
	g.Resize(width, height)
	return g
}

// Resize reallocates all five attachments at the new dimensions.
func (g *GBuffer) Resize(width, height uint32) {
	g.width, g.height = width, height
	g.position = g.alloc.CreateColorTarget(width, height, Position)
	g.normal = g.alloc.CreateColorTarget(width, height, Normal)
	g.albedo = g.alloc.CreateColorTarget(width, height, Albedo)
	g.emissive = g.alloc.CreateColorTarget(width, height, Emissive)
	g.depth = g.alloc.CreateDepthTarget(width, height)
	render.Logger().Debug("gbuffer resized", "width", width, "height", height)
}

// ColorTarget returns the render target view for one of the four color
// attachments. Panics if target is Depth; use DepthTarget for that.
func (g *GBuffer) ColorTarget(target Target) backend.RenderTargetView {
	switch target {
	case Position:
		return g.position
	case Normal:
		return g.normal
	case Albedo:
		return g.albedo
	case Emissive:
		return g.emissive
	default:
		panic(fmt.Sprintf("gbuffer: ColorTarget called with non-color target %v", target))
	}
}

// DepthTarget returns the shared depth attachment.
func (g *GBuffer) DepthTarget() backend.DepthStencilView { return g.depth }

// Width and Height return the GBuffer's current dimensions.
func (g *GBuffer) Width() uint32  { return g.width }
func (g *GBuffer) Height() uint32 { return g.height }

// Bind sets all four color attachments plus the shared depth attachment
// as the current render targets, the MRT set GeometryPass writes.
func (g *GBuffer) Bind(cmd *cmdcontext.Context) {
	cmd.SetRenderTargets([]backend.RenderTargetView{g.position, g.normal, g.albedo, g.emissive}, g.depth)
}

// Clear clears every color attachment to (0,0,0,0) and the depth
// attachment to 1.0, per the GeometryPass contract in spec.md §4.3.
func (g *GBuffer) Clear(cmd *cmdcontext.Context) {
	for _, rtv := range []backend.RenderTargetView{g.position, g.normal, g.albedo, g.emissive} {
		cmd.ClearRenderTarget(rtv, [4]float32{0, 0, 0, 0})
	}
	cmd.ClearDepthStencil(g.depth, 1.0)
}

// EncodeNormal maps a world-space unit normal into the [0,1] range the
// Normal target stores, per encoded = normal*0.5 + 0.5.
func EncodeNormal(n [3]float32) [3]float32 {
	return [3]float32{
		n[0]*0.5 + 0.5,
		n[1]*0.5 + 0.5,
		n[2]*0.5 + 0.5,
	}
}

// DecodeNormal inverts EncodeNormal.
func DecodeNormal(encoded [3]float32) [3]float32 {
	return [3]float32{
		encoded[0]*2 - 1,
		encoded[1]*2 - 1,
		encoded[2]*2 - 1,
	}
}
