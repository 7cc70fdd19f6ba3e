// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

// Package dx12 implements backend.Backend atop a D3D12-like graphics API.
// Initialize creates the device, command queue, an RTV heap sized to the
// back-buffer count, a DSV heap of size 1, CBV/SRV and sampler heaps, the
// swap chain and the default PSO. No command allocator or graphics command
// list is created: BeginFrame neither resets one nor binds the default
// PSO, and the commandList methods only store the state they are given.
package dx12

import (
	"fmt"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/backend/dx12/d3d12"
	"github.com/ashenforge/render/backend/dx12/dxgi"
)

const backBufferCount = 3

// Backend is the D3D12-like implementation of backend.Backend.
type Backend struct {
	*backend.FrameBookkeeping

	device      *d3d12.Device
	queue       *d3d12.ID3D12CommandQueue
	factory     *dxgi.IDXGIFactory
	swapChain   *dxgi.IDXGISwapChain

	rtvHeap     *d3d12.DescriptorHeap
	dsvHeap     *d3d12.DescriptorHeap
	cbvSrvHeap  *d3d12.DescriptorHeap
	samplerHeap *d3d12.DescriptorHeap

	allocator   *d3d12.ID3D12CommandAllocator
	list        *d3d12.ID3D12GraphicsCommandList
	defaultPSO  *d3d12.ID3D12PipelineState

	width, height uint32
}

// New constructs an uninitialized D3D12-like backend. scene may be nil.
func New(scene render.SceneProvider) *Backend {
	return &Backend{FrameBookkeeping: backend.NewFrameBookkeeping(scene)}
}

func (b *Backend) Initialize(windowHandle uintptr, width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("dx12: invalid size %dx%d: %w", width, height, render.ErrBackendInit)
	}
	if windowHandle == 0 {
		return fmt.Errorf("dx12: nil window handle: %w", render.ErrBackendInit)
	}
	b.width, b.height = width, height

	device, err := createDevice()
	if err != nil {
		return fmt.Errorf("dx12: create device: %w: %w", err, render.ErrBackendInit)
	}
	b.device = device

	queue, err := device.CreateCommandQueue()
	if err != nil {
		return fmt.Errorf("dx12: create command queue: %w: %w", err, render.ErrBackendInit)
	}
	b.queue = queue

	b.rtvHeap = d3d12.NewDescriptorHeap(nil, d3d12.HeapTypeRTV, backBufferCount, 0)
	b.dsvHeap = d3d12.NewDescriptorHeap(nil, d3d12.HeapTypeDSV, 1, 0)
	b.cbvSrvHeap = d3d12.NewDescriptorHeap(nil, d3d12.HeapTypeCBVSRVUAV, 1024, 0)
	b.samplerHeap = d3d12.NewDescriptorHeap(nil, d3d12.HeapTypeSampler, 64, 0)

	factory, err := dxgi.CreateFactory()
	if err != nil {
		return fmt.Errorf("dx12: create DXGI factory: %w: %w", err, render.ErrBackendInit)
	}
	b.factory = factory

	swapChainDesc := dxgi.DefaultSwapChainDescriptor(width, height, backBufferCount)
	swapChain, err := b.factory.CreateSwapChain(b.queue, swapChainDesc)
	if err != nil {
		return fmt.Errorf("dx12: create swap chain: %w: %w", err, render.ErrBackendInit)
	}
	b.swapChain = swapChain

	pso, err := buildDefaultPSO(b.device)
	if err != nil {
		return fmt.Errorf("dx12: build default pipeline state: %w: %w", err, render.ErrBackendInit)
	}
	b.defaultPSO = pso

	render.Logger().Info("dx12 backend initialized", "width", width, "height", height)
	return nil
}

// createDevice is a seam for the real D3D12CreateDevice + adapter
// enumeration call; kept separate so tests can stub it without touching
// the rest of Initialize's bookkeeping.
var createDevice = func() (*d3d12.Device, error) {
	return &d3d12.Device{FeatureLevel: d3d12.FeatureLevel11_0}, nil
}

func (b *Backend) Shutdown() {
	b.rtvHeap, b.dsvHeap, b.cbvSrvHeap, b.samplerHeap = nil, nil, nil, nil
	b.device, b.queue, b.swapChain, b.factory = nil, nil, nil, nil
}

func (b *Backend) BeginFrame() error {
	// Only the frame bookkeeping is opened here: no command allocator or
	// list is reset (b.allocator and b.list stay nil) and defaultPSO, built
	// once in Initialize, is not bound.
	acquireIndex := uint32(0)
	b.FrameBookkeeping.BeginFrame(acquireIndex)
	return nil
}

func (b *Backend) EndFrame() error {
	if !b.Active() {
		return render.ErrFrameNotActive
	}
	b.End()
	return nil
}

func (b *Backend) Present() error {
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
	return renderTargetView{index: b.AcquireIndex()}
}

func (b *Backend) GetDefaultDepthBuffer() backend.DepthStencilView {
	return depthStencilView{}
}

func (b *Backend) CreateCommandContext() backend.CommandList {
	return &commandList{}
}

func (b *Backend) Supports(f backend.Feature) bool {
	switch f {
	case backend.FeatureMultiThreadedRecording:
		return true
	case backend.FeatureBindlessTextures:
		return true
	default:
		return false
	}
}

// SupportsDLSS and SupportsFSR satisfy upscaler.PlatformCapability.
func (b *Backend) SupportsDLSS() bool { return true }
func (b *Backend) SupportsFSR() bool  { return true }

type renderTargetView struct{ index uint32 }

func (renderTargetView) isRenderTargetView() {}

type depthStencilView struct{}

func (depthStencilView) isDepthStencilView() {}
