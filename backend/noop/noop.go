// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package noop implements backend.Backend without talking to a GPU. It
// exists so the rest of this module - cmdcontext, passes, pipeline,
// upscaler - can be exercised by tests without Vulkan or D3D12 present.
package noop

import (
	"sync/atomic"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend"
)

const swapchainImageCount = 3

type rtv struct{ index uint32 }

func (rtv) isRenderTargetView() {}

type dsv struct{}

func (dsv) isDepthStencilView() {}

// Backend is an in-memory, single-threaded reference implementation of
// backend.Backend. Its "swapchain" is a ring of integer indices and its
// fence is an atomic counter; Draw calls are recorded rather than
// submitted anywhere, which makes it straightforward to assert against in
// tests.
type Backend struct {
	*backend.FrameBookkeeping

	width, height uint32
	nextImage     uint32
	frameCounter  atomic.Uint64

	depth dsv

	// recorded is the flattened record of every CommandList returned
	// since the last Shutdown, for test inspection. Each entry is
	// heap-allocated so a commandList's sink pointer stays valid across
	// later appends to this slice.
	recorded []*Recorded
}

// Recorded captures one CreateCommandContext call's worth of draws.
type Recorded struct {
	Draws             []DrawCall
	Clears            [][4]float32
	DepthClears       []float32
	RenderTargetCount int
}

// DrawCall is one Draw or DrawIndexed invocation recorded by a noop
// CommandList.
type DrawCall struct {
	Indexed                         bool
	VertexCount, InstanceCount      uint32
	FirstVertex, FirstIndex         uint32
	BaseVertex                      int32
}

// New constructs a noop backend. scene may be nil.
func New(scene render.SceneProvider) *Backend {
	return &Backend{FrameBookkeeping: backend.NewFrameBookkeeping(scene)}
}

func (b *Backend) Initialize(_ uintptr, width, height uint32) error {
	if width == 0 || height == 0 {
		return render.ErrBackendInit
	}
	b.width, b.height = width, height
	render.Logger().Info("noop backend initialized", "width", width, "height", height)
	return nil
}

func (b *Backend) Shutdown() {
	b.recorded = nil
}

func (b *Backend) BeginFrame() error {
	acquire := b.nextImage
	b.nextImage = (b.nextImage + 1) % swapchainImageCount
	b.FrameBookkeeping.BeginFrame(acquire)
	return nil
}

func (b *Backend) EndFrame() error {
	if !b.Active() {
		return render.ErrFrameNotActive
	}
	b.frameCounter.Add(1)
	b.End()
	return nil
}

func (b *Backend) Present() error {
	if b.Active() {
		return render.ErrFrameNotActive
	}
	return nil
}

func (b *Backend) Resize(width, height uint32) error {
	if b.Active() {
		return render.ErrFrameNotActive
	}
	if width == 0 || height == 0 {
		return render.ErrInvalidViewport
	}
	b.width, b.height = width, height
	return nil
}

func (b *Backend) GetDefaultRenderTarget() backend.RenderTargetView {
	return rtv{index: b.AcquireIndex()}
}

func (b *Backend) GetDefaultDepthBuffer() backend.DepthStencilView {
	return b.depth
}

func (b *Backend) CreateCommandContext() backend.CommandList {
	sink := &Recorded{}
	b.recorded = append(b.recorded, sink)
	return &commandList{sink: sink}
}

func (b *Backend) Supports(f backend.Feature) bool {
	switch f {
	case backend.FeatureMultiThreadedRecording:
		return true
	case backend.FeatureBindlessTextures:
		return false
	default:
		return false
	}
}

// RecordedDraws returns every CommandList's draw calls recorded since the
// backend was constructed or last Shutdown, for test assertions.
func (b *Backend) RecordedDraws() []*Recorded {
	return b.recorded
}

// FrameCount returns the number of frames completed by EndFrame.
func (b *Backend) FrameCount() uint64 {
	return b.frameCounter.Load()
}
