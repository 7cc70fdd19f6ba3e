// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vk is a minimal, hand-written Vulkan binding covering exactly
// the subset of the API this backend needs: instance/device creation,
// swapchain management, synchronization primitives, and the render-pass
// and command-buffer recording calls the Render Command Context compiles
// down to. It is not a general-purpose Vulkan binding.
package vk

// Handle is the common representation of every Vulkan dispatchable and
// non-dispatchable handle type (VkInstance, VkDevice, VkBuffer, ...).
type Handle uint64

type (
	Instance       = Handle
	PhysicalDevice = Handle
	Device         = Handle
	Queue          = Handle
	SurfaceKHR     = Handle
	SwapchainKHR   = Handle
	Image          = Handle
	ImageView      = Handle
	Semaphore      = Handle
	Fence          = Handle
	CommandPool    = Handle
	CommandBuffer  = Handle
	RenderPass     = Handle
	Framebuffer    = Handle
	Buffer         = Handle
	DeviceMemory   = Handle
	Pipeline       = Handle
	PipelineLayout = Handle
)

// Result mirrors VkResult. The vulkan backend's checked call sites treat
// Success as the only non-error value, except BeginFrame, which also
// accepts NotReady. ErrorOutOfDate from acquire or present is reported as
// render.ErrSwapchainOutOfDate; other failures are surfaced wrapped in
// render.ErrBackendInit.
type Result int32

const (
	Success        Result = 0
	NotReady       Result = 1
	Timeout        Result = 2
	ErrorOutOfDate Result = -1000001004
)

func (r Result) Error() string {
	if r == Success {
		return "VK_SUCCESS"
	}
	return "VkResult(" + itoa(int32(r)) + ")"
}

func itoa(v int32) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [12]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Format mirrors a narrow subset of VkFormat.
type Format int32

const (
	FormatUndefined   Format = 0
	FormatB8G8R8A8SRGB Format = 50
	FormatD32Float     Format = 126
)

// ColorSpaceKHR mirrors VkColorSpaceKHR.
type ColorSpaceKHR int32

const ColorSpaceSRGBNonlinear ColorSpaceKHR = 0

// PresentModeKHR mirrors VkPresentModeKHR.
type PresentModeKHR int32

const (
	PresentModeImmediate PresentModeKHR = 0
	PresentModeMailbox   PresentModeKHR = 1
	PresentModeFIFO      PresentModeKHR = 2
)

// Extent2D mirrors VkExtent2D.
type Extent2D struct{ Width, Height uint32 }

// ImageUsageFlags mirrors VkImageUsageFlags bits this backend uses.
type ImageUsageFlags uint32

const (
	ImageUsageColorAttachment ImageUsageFlags = 1 << 4
	ImageUsageDepthStencil    ImageUsageFlags = 1 << 5
)

// SurfaceCapabilitiesKHR mirrors the fields of VkSurfaceCapabilitiesKHR
// this backend reads when creating a swapchain.
type SurfaceCapabilitiesKHR struct {
	MinImageCount uint32
	MaxImageCount uint32
	CurrentExtent Extent2D
	MinExtent     Extent2D
	MaxExtent     Extent2D
}

// SwapchainCreateInfoKHR mirrors VkSwapchainCreateInfoKHR.
type SwapchainCreateInfoKHR struct {
	Surface          SurfaceKHR
	MinImageCount    uint32
	ImageFormat      Format
	ImageColorSpace  ColorSpaceKHR
	ImageExtent      Extent2D
	ImageArrayLayers uint32
	ImageUsage       ImageUsageFlags
	PresentMode      PresentModeKHR
	OldSwapchain     SwapchainKHR
}

// FenceCreateFlags mirrors VkFenceCreateFlags.
type FenceCreateFlags uint32

const FenceCreateSignaled FenceCreateFlags = 1
