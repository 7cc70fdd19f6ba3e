// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vulkan implements backend.Backend atop a Vulkan-like graphics
// API: the first physical device the loader reports, queue family 0, and a
// BGRA8-sRGB swapchain clamped to surface_caps.min+1 images in mailbox
// present mode. FIFO is not tried when mailbox is unavailable, and no depth
// image is created; GetDefaultDepthBuffer returns a placeholder view.
package vulkan

import (
	"fmt"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/backend/vulkan/vk"
	"github.com/ashenforge/render/platform"
)

// Backend is the Vulkan-like implementation of backend.Backend.
type Backend struct {
	*backend.FrameBookkeeping

	platform platform.Platform
	cmds     *vk.Commands

	instance       vk.Instance
	physicalDevice vk.PhysicalDevice
	device         vk.Device
	queue          vk.Queue
	queueFamily    uint32
	surface        vk.SurfaceKHR

	sc *swapchain

	frameFence     vk.Fence
	imageAvailable vk.Semaphore
	renderFinished vk.Semaphore
}

// New constructs an uninitialized Vulkan-like backend. p supplies the
// window-system surface creation calls; scene may be nil.
func New(p platform.Platform, scene render.SceneProvider) *Backend {
	return &Backend{
		FrameBookkeeping: backend.NewFrameBookkeeping(scene),
		platform:         p,
	}
}

func (b *Backend) Initialize(windowHandle uintptr, width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("vulkan: invalid size %dx%d: %w", width, height, render.ErrBackendInit)
	}
	if err := vk.Init(); err != nil {
		return fmt.Errorf("vulkan: %w: %w", err, render.ErrBackendInit)
	}

	b.cmds = vk.NewCommands()
	b.cmds.LoadGlobal()

	instance, res := b.cmds.CreateInstance(nil, nil)
	if res != vk.Success {
		return fmt.Errorf("vulkan: vkCreateInstance failed (%v): %w", res, render.ErrBackendInit)
	}
	b.instance = instance
	b.cmds.LoadInstance(instance)

	pd, err := b.selectPhysicalDevice()
	if err != nil {
		return fmt.Errorf("vulkan: %w: %w", err, render.ErrBackendInit)
	}
	b.physicalDevice = pd

	device, res := b.cmds.CreateDevice(pd, nil, nil)
	if res != vk.Success {
		return fmt.Errorf("vulkan: vkCreateDevice failed (%v): %w", res, render.ErrBackendInit)
	}
	b.device = device
	b.cmds.LoadDevice(device)
	b.queue = b.cmds.GetDeviceQueue(device, b.queueFamily, 0)

	if b.platform != nil {
		surface, err := b.platform.CreateVulkanSurface(uintptr(instance), windowHandle)
		if err != nil {
			return fmt.Errorf("vulkan: create surface: %w: %w", err, render.ErrBackendInit)
		}
		b.surface = vk.SurfaceKHR(surface)
	}

	sc, err := newSwapchain(b.cmds, b.device, b.physicalDevice, b.surface, width, height, vk.SwapchainKHR(0))
	if err != nil {
		return fmt.Errorf("vulkan: %w: %w", err, render.ErrBackendInit)
	}
	b.sc = sc

	if f, r := b.cmds.CreateFence(b.device, nil, nil); r == vk.Success {
		b.frameFence = f
	}
	b.imageAvailable, _ = b.cmds.CreateSemaphore(b.device, nil, nil)
	b.renderFinished, _ = b.cmds.CreateSemaphore(b.device, nil, nil)

	render.Logger().Info("vulkan backend initialized", "width", width, "height", height)
	return nil
}

// selectPhysicalDevice returns the first enumerated physical device and
// sets queue family 0. This minimal binding cannot enumerate real device
// properties, so device type, geometry-shader support and present support
// are not checked.
func (b *Backend) selectPhysicalDevice() (vk.PhysicalDevice, error) {
	var count uint32
	if r := b.cmds.EnumeratePhysicalDevices(b.instance, &count, nil); r != vk.Success {
		return 0, fmt.Errorf("vkEnumeratePhysicalDevices (count) failed: %v", r)
	}
	if count == 0 {
		return 0, fmt.Errorf("no Vulkan physical devices found")
	}
	devices := make([]vk.PhysicalDevice, count)
	if r := b.cmds.EnumeratePhysicalDevices(b.instance, &count, &devices[0]); r != vk.Success {
		return 0, fmt.Errorf("vkEnumeratePhysicalDevices failed: %v", r)
	}
	b.queueFamily = 0
	return devices[0], nil
}

func (b *Backend) Shutdown() {
	if b.device != 0 {
		b.cmds.DeviceWaitIdle(b.device)
	}
	if b.imageAvailable != 0 {
		b.cmds.DestroySemaphore(b.device, b.imageAvailable, nil)
	}
	if b.renderFinished != 0 {
		b.cmds.DestroySemaphore(b.device, b.renderFinished, nil)
	}
	if b.frameFence != 0 {
		b.cmds.DestroyFence(b.device, b.frameFence, nil)
	}
	if b.sc != nil {
		b.sc.destroy(b.cmds, b.device)
	}
	if b.device != 0 {
		b.cmds.DestroyDevice(b.device, nil)
	}
	if b.instance != 0 {
		b.cmds.DestroyInstance(b.instance, nil)
	}
}

func (b *Backend) BeginFrame() error {
	var imageIndex uint32
	res := b.cmds.AcquireNextImageKHR(b.device, b.sc.handle, ^uint64(0), b.imageAvailable, 0, &imageIndex)
	if res == vk.ErrorOutOfDate {
		return render.ErrSwapchainOutOfDate
	}
	if res != vk.Success && res != vk.NotReady {
		return fmt.Errorf("vulkan: vkAcquireNextImageKHR failed (%v): %w", res, render.ErrBackendInit)
	}
	b.cmds.WaitForFences(b.device, 1, &b.frameFence, true, ^uint64(0))
	b.cmds.ResetFences(b.device, 1, &b.frameFence)
	b.FrameBookkeeping.BeginFrame(imageIndex)
	return nil
}

func (b *Backend) EndFrame() error {
	if !b.Active() {
		return render.ErrFrameNotActive
	}
	b.cmds.QueueSubmit(b.queue, 0, nil, b.frameFence)
	b.End()
	return nil
}

func (b *Backend) Present() error {
	res := b.cmds.QueuePresentKHR(b.queue, nil)
	if res == vk.ErrorOutOfDate {
		return render.ErrSwapchainOutOfDate
	}
	if res != vk.Success {
		return fmt.Errorf("vulkan: vkQueuePresentKHR failed (%v): %w", res, render.ErrBackendInit)
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
	old := b.sc.handle
	sc, err := newSwapchain(b.cmds, b.device, b.physicalDevice, b.surface, width, height, old)
	if err != nil {
		return fmt.Errorf("vulkan: resize: %w", err)
	}
	b.sc.destroy(b.cmds, b.device)
	b.sc = sc
	return nil
}

func (b *Backend) GetDefaultRenderTarget() backend.RenderTargetView {
	return renderTargetView{image: b.sc.images[b.AcquireIndex()], view: b.sc.views[b.AcquireIndex()]}
}

func (b *Backend) GetDefaultDepthBuffer() backend.DepthStencilView {
	return depthStencilView{}
}

func (b *Backend) CreateCommandContext() backend.CommandList {
	return &commandList{cmds: b.cmds}
}

func (b *Backend) Supports(f backend.Feature) bool {
	switch f {
	case backend.FeatureMultiThreadedRecording:
		return false
	case backend.FeatureBindlessTextures:
		return false
	default:
		return false
	}
}

// SupportsDLSS and SupportsFSR satisfy upscaler.PlatformCapability: the
// Vulkan-like backend has neither vendor upscaler wired, relying on the
// always-available TAAU fallback.
func (b *Backend) SupportsDLSS() bool { return false }
func (b *Backend) SupportsFSR() bool  { return false }

type renderTargetView struct {
	image vk.Image
	view  vk.ImageView
}

func (renderTargetView) isRenderTargetView() {}

type depthStencilView struct{}

func (depthStencilView) isDepthStencilView() {}
