// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package backend defines the Render Backend contract shared by the
// Vulkan-like, D3D12-like, and noop implementations, and the bookkeeping
// they all need around the frame lifecycle.
package backend

import (
	"fmt"

	render "github.com/ashenforge/render"
)

// Feature is a capability flag a Backend can advertise through Supports.
type Feature int

const (
	// FeatureMultiThreadedRecording indicates command contexts created by
	// CreateCommandContext may be recorded from different goroutines
	// concurrently (each context still only ever touches its own state).
	FeatureMultiThreadedRecording Feature = iota
	// FeatureBindlessTextures indicates the backend can bind an
	// unbounded descriptor table for shader resources. Advertised as a
	// capability only; no bindless path is implemented.
	FeatureBindlessTextures
)

// RenderTargetView is an opaque handle to a color attachment a Pass can
// render into.
type RenderTargetView interface{ isRenderTargetView() }

// DepthStencilView is an opaque handle to a depth/stencil attachment.
type DepthStencilView interface{ isDepthStencilView() }

// CommandList is the minimal set of true native API calls a backend
// exposes beneath cmdcontext.Context. Everything above this interface
// (slot-name resolution, arena bookkeeping, validation) is backend-neutral
// and lives in cmdcontext.
type CommandList interface {
	BindVertexBuffer(arenaOffset uint64, stride uint32)
	BindIndexBuffer(arenaOffset uint64, wide32 bool)
	BindConstant(slot render.ConstantSlot, arenaOffset uint64, size uint32)
	BindShaderResource(slot uint32, h render.Handle)
	BindSampler(slot uint32, h render.Handle)
	SetViewport(v render.Viewport)
	SetScissor(s render.ScissorRect)

	// SetRenderTargets binds up to four color attachments plus an
	// optional depth/stencil attachment as the MRT set subsequent draws
	// and clears apply to. GeometryPass, through gbuffer.GBuffer.Bind, is
	// the only caller and uses all four color slots for the GBuffer; the
	// other passes do not bind a color target of their own.
	SetRenderTargets(colorViews []RenderTargetView, depth DepthStencilView)

	// ClearRenderTarget clears one currently-bound color attachment to
	// color.
	ClearRenderTarget(rtv RenderTargetView, color [4]float32)

	// ClearDepthStencil clears the currently-bound depth attachment to
	// depth (stencil is always cleared to 0; the engine does not use the
	// stencil channel).
	ClearDepthStencil(dsv DepthStencilView, depth float32)

	Draw(vertexCount, instanceCount, firstVertex uint32)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32)
}

// FrameState records whether a Backend currently has an open frame, and
// which swapchain image it was acquired against. Backend implementations
// embed *FrameState and use it to enforce the Idle/FrameActive state
// machine uniformly, instead of duplicating the checks per backend.
type FrameState struct {
	active       bool
	acquireIndex uint32
	acquireToken uint64
	nextToken    uint64
}

// Begin transitions Idle -> FrameActive, recording acquireIndex as the
// swapchain image this frame targets. It returns a token that Present must
// present back via Validate.
func (f *FrameState) Begin(acquireIndex uint32) uint64 {
	f.nextToken++
	f.active = true
	f.acquireIndex = acquireIndex
	f.acquireToken = f.nextToken
	return f.acquireToken
}

// Active reports whether a frame is currently open.
func (f *FrameState) Active() bool { return f.active }

// AcquireIndex returns the swapchain image index the open frame targets.
func (f *FrameState) AcquireIndex() uint32 { return f.acquireIndex }

// Validate checks that token matches the currently open frame, returning
// ErrFrameNotActive if no frame is open and ErrMismatchedFramePair if
// token belongs to a stale frame.
func (f *FrameState) Validate(token uint64) error {
	if !f.active {
		return render.ErrFrameNotActive
	}
	if token != f.acquireToken {
		return fmt.Errorf("render: frame pair token %d does not match open frame %d: %w",
			token, f.acquireToken, render.ErrMismatchedFramePair)
	}
	return nil
}

// End transitions FrameActive -> Idle.
func (f *FrameState) End() {
	f.active = false
}

// Backend is the API-agnostic render device contract. Vulkan-like and
// D3D12-like implementations, and the noop test backend, all satisfy this
// interface identically; callers above this layer never branch on which
// concrete backend is in use.
type Backend interface {
	// Initialize creates the device, queues, and swapchain bound to
	// windowHandle at the given dimensions. Returns ErrBackendInit wrapped
	// with the underlying cause on failure.
	Initialize(windowHandle uintptr, width, height uint32) error

	// Shutdown releases all backend-owned resources. Safe to call once;
	// must not be called while a frame is active.
	Shutdown()

	// BeginFrame acquires the next swapchain image and resets this
	// frame's transient arenas. Returns ErrSwapchainOutOfDate if the
	// swapchain needs to be recreated via Resize.
	BeginFrame() error

	// EndFrame submits recorded command contexts for execution. Returns
	// ErrFrameNotActive if no frame is open.
	EndFrame() error

	// Present displays the frame completed by the most recent EndFrame.
	// Returns ErrSwapchainOutOfDate if the swapchain is stale.
	Present() error

	// Resize recreates the swapchain and any dependent render targets at
	// the new dimensions. Must not be called while a frame is active.
	Resize(width, height uint32) error

	// GetDefaultRenderTarget returns the color attachment for the
	// currently acquired swapchain image. Valid only between BeginFrame
	// and EndFrame.
	GetDefaultRenderTarget() RenderTargetView

	// GetDefaultDepthBuffer returns the backend-owned default depth
	// attachment.
	GetDefaultDepthBuffer() DepthStencilView

	// CreateCommandContext returns a fresh recording surface bound to
	// this frame's arenas. Valid only between BeginFrame and EndFrame.
	CreateCommandContext() CommandList

	// Arenas returns the three per-frame transient upload arenas BeginFrame
	// resets, for binding into a cmdcontext.Context.
	Arenas() *render.FrameArenas

	// Supports reports whether the backend advertises feature.
	Supports(feature Feature) bool
}

// FrameBookkeeping holds the backend-neutral per-frame state extracted so
// that neither backend/vulkan nor backend/dx12 duplicates it: arena reset,
// clear-color resolution, and frame-active tracking. Concrete backends
// embed this and call its methods from their own BeginFrame/EndFrame.
type FrameBookkeeping struct {
	FrameState
	arenas *render.FrameArenas
	Scene  render.SceneProvider
}

// NewFrameBookkeeping constructs bookkeeping with fresh arenas. scene may
// be nil; ClearColor then falls back to render.DefaultClearColor.
func NewFrameBookkeeping(scene render.SceneProvider) *FrameBookkeeping {
	return &FrameBookkeeping{
		arenas: render.NewFrameArenas(),
		Scene:  scene,
	}
}

// Arenas returns the backend's three per-frame transient upload arenas.
// cmdcontext.New binds a CommandList to these so draws recorded by Passes
// land in the same arenas BeginFrame resets, instead of a disconnected
// set only the backend ever sees.
func (fb *FrameBookkeeping) Arenas() *render.FrameArenas { return fb.arenas }

// BeginFrame resets the transient arenas and opens the frame state
// machine, returning the token Backend.EndFrame/Present should validate
// against.
func (fb *FrameBookkeeping) BeginFrame(acquireIndex uint32) uint64 {
	fb.arenas.Reset()
	return fb.Begin(acquireIndex)
}

// ClearColor resolves the active scene's clear color, or the engine
// default if no main camera is present.
func (fb *FrameBookkeeping) ClearColor() [4]float32 {
	return render.ClearColorOrDefault(fb.Scene)
}
