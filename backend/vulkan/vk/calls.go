// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT
package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// call invokes proc under sig and returns the VkResult. Each arg must
// already follow the goffi pointer-to-storage convention: callers box
// pointer args with ptrTo and Handle args with h.
func call(sig *types.CallInterface, proc unsafe.Pointer, args ...unsafe.Pointer) Result {
	if proc == nil {
		return ErrorOutOfDate
	}
	var result int32
	_ = ffi.CallFunction(sig, proc, unsafe.Pointer(&result), args)
	return Result(result)
}

func ptrTo(v unsafe.Pointer) unsafe.Pointer {
	local := v
	return unsafe.Pointer(&local)
}

func h(v Handle) unsafe.Pointer { local := v; return unsafe.Pointer(&local) }

// CreateInstance wraps vkCreateInstance. createInfo and allocator are
// passed as opaque pointers the caller has already laid out in the
// platform ABI's expected struct shape.
func (c *Commands) CreateInstance(createInfo, allocator unsafe.Pointer) (Instance, Result) {
	var instance Instance
	out := &instance
	r := call(&sigResultPPP, c.createInstance, ptrTo(createInfo), ptrTo(allocator), ptrTo(unsafe.Pointer(out)))
	return instance, r
}

func (c *Commands) DestroyInstance(instance Instance, allocator unsafe.Pointer) {
	call(&sigVoidHPtr, c.destroyInstance, h(instance), ptrTo(allocator))
}

func (c *Commands) EnumeratePhysicalDevices(instance Instance, count *uint32, devices *PhysicalDevice) Result {
	return call(&sigResultHPPP, c.enumeratePhysicalDevices, h(instance),
		ptrTo(unsafe.Pointer(count)), ptrTo(unsafe.Pointer(devices)), nil)
}

func (c *Commands) CreateDevice(physicalDevice PhysicalDevice, createInfo, allocator unsafe.Pointer) (Device, Result) {
	var device Device
	r := call(&sigResultHPPP, c.createDevice, h(physicalDevice), ptrTo(createInfo), ptrTo(allocator), ptrTo(unsafe.Pointer(&device)))
	return device, r
}

func (c *Commands) DestroyDevice(device Device, allocator unsafe.Pointer) {
	call(&sigVoidHPtr, c.destroyDevice, h(device), ptrTo(allocator))
}

func (c *Commands) GetDeviceQueue(device Device, familyIndex, queueIndex uint32) Queue {
	var queue Queue
	call(&sigVoidHU32PP, c.getDeviceQueue, h(device), ptrTo(unsafe.Pointer(&familyIndex)),
		ptrTo(unsafe.Pointer(&queueIndex)), ptrTo(unsafe.Pointer(&queue)))
	return queue
}

func (c *Commands) DeviceWaitIdle(device Device) Result {
	return call(&sigVoidH, c.deviceWaitIdle, h(device))
}

func (c *Commands) GetPhysicalDeviceSurfaceCapabilitiesKHR(pd PhysicalDevice, surface SurfaceKHR, caps *SurfaceCapabilitiesKHR) Result {
	return call(&sigResultHHPtr, c.getPhysicalDeviceSurfaceCapabilitiesKHR, h(pd), h(surface), ptrTo(unsafe.Pointer(caps)))
}

func (c *Commands) CreateSwapchainKHR(device Device, createInfo, allocator unsafe.Pointer) (SwapchainKHR, Result) {
	var sc SwapchainKHR
	r := call(&sigResultHPPP, c.createSwapchainKHR, h(device), ptrTo(createInfo), ptrTo(allocator), ptrTo(unsafe.Pointer(&sc)))
	return sc, r
}

func (c *Commands) DestroySwapchainKHR(device Device, swapchain SwapchainKHR, allocator unsafe.Pointer) {
	call(&sigResultHHPtr, c.destroySwapchainKHR, h(device), h(swapchain), ptrTo(allocator))
}

func (c *Commands) GetSwapchainImagesKHR(device Device, swapchain SwapchainKHR, count *uint32, images *Image) Result {
	return call(&sigResultHPPP, c.getSwapchainImagesKHR, h(device), h(swapchain), ptrTo(unsafe.Pointer(count)), ptrTo(unsafe.Pointer(images)))
}

func (c *Commands) AcquireNextImageKHR(device Device, swapchain SwapchainKHR, timeout uint64, semaphore Semaphore, fence Fence, imageIndex *uint32) Result {
	return call(&sigResultHPPPP, c.acquireNextImageKHR, h(device), h(swapchain),
		ptrTo(unsafe.Pointer(&timeout)), ptrTo(unsafe.Pointer(&semaphore)), ptrTo(unsafe.Pointer(imageIndex)))
}

func (c *Commands) QueuePresentKHR(queue Queue, presentInfo unsafe.Pointer) Result {
	return call(&sigResultHPtr, c.queuePresentKHR, h(queue), ptrTo(presentInfo))
}

func (c *Commands) CreateSemaphore(device Device, createInfo, allocator unsafe.Pointer) (Semaphore, Result) {
	var s Semaphore
	r := call(&sigResultHPPP, c.createSemaphore, h(device), ptrTo(createInfo), ptrTo(allocator), ptrTo(unsafe.Pointer(&s)))
	return s, r
}

func (c *Commands) DestroySemaphore(device Device, s Semaphore, allocator unsafe.Pointer) {
	call(&sigResultHHPtr, c.destroySemaphore, h(device), h(s), ptrTo(allocator))
}

func (c *Commands) CreateFence(device Device, createInfo, allocator unsafe.Pointer) (Fence, Result) {
	var f Fence
	r := call(&sigResultHPPP, c.createFence, h(device), ptrTo(createInfo), ptrTo(allocator), ptrTo(unsafe.Pointer(&f)))
	return f, r
}

func (c *Commands) DestroyFence(device Device, fence Fence, allocator unsafe.Pointer) {
	call(&sigResultHHPtr, c.destroyFence, h(device), h(fence), ptrTo(allocator))
}

func (c *Commands) WaitForFences(device Device, count uint32, fences *Fence, waitAll bool, timeout uint64) Result {
	var waitAllU32 uint32
	if waitAll {
		waitAllU32 = 1
	}
	return call(&sigResultHPPPP, c.waitForFences, h(device), ptrTo(unsafe.Pointer(&count)),
		ptrTo(unsafe.Pointer(fences)), ptrTo(unsafe.Pointer(&waitAllU32)))
}

func (c *Commands) ResetFences(device Device, count uint32, fences *Fence) Result {
	return call(&sigResultHPPP, c.resetFences, h(device), ptrTo(unsafe.Pointer(&count)), ptrTo(unsafe.Pointer(fences)), nil)
}

func (c *Commands) CreateImageView(device Device, createInfo, allocator unsafe.Pointer) (ImageView, Result) {
	var v ImageView
	r := call(&sigResultHPPP, c.createImageView, h(device), ptrTo(createInfo), ptrTo(allocator), ptrTo(unsafe.Pointer(&v)))
	return v, r
}

func (c *Commands) DestroyImageView(device Device, view ImageView, allocator unsafe.Pointer) {
	call(&sigResultHHPtr, c.destroyImageView, h(device), h(view), ptrTo(allocator))
}

func (c *Commands) CreateCommandPool(device Device, createInfo, allocator unsafe.Pointer) (CommandPool, Result) {
	var p CommandPool
	r := call(&sigResultHPPP, c.createCommandPool, h(device), ptrTo(createInfo), ptrTo(allocator), ptrTo(unsafe.Pointer(&p)))
	return p, r
}

func (c *Commands) AllocateCommandBuffers(device Device, allocateInfo unsafe.Pointer, buffers *CommandBuffer) Result {
	return call(&sigResultHPtr, c.allocateCommandBuffers, h(device), ptrTo(allocateInfo))
}

func (c *Commands) BeginCommandBuffer(cb CommandBuffer, beginInfo unsafe.Pointer) Result {
	return call(&sigResultHPtr, c.beginCommandBuffer, h(cb), ptrTo(beginInfo))
}

func (c *Commands) EndCommandBuffer(cb CommandBuffer) Result {
	return call(&sigVoidH, c.endCommandBuffer, h(cb))
}

func (c *Commands) QueueSubmit(queue Queue, submitCount uint32, submits unsafe.Pointer, fence Fence) Result {
	return call(&sigResultHPPPP, c.queueSubmit, h(queue), ptrTo(unsafe.Pointer(&submitCount)), ptrTo(submits), h(fence))
}

func (c *Commands) CmdBeginRenderPass(cb CommandBuffer, beginInfo unsafe.Pointer, contents uint32) {
	call(&sigVoidHU32PP, c.cmdBeginRenderPass, h(cb), ptrTo(unsafe.Pointer(&contents)), ptrTo(beginInfo), nil)
}

func (c *Commands) CmdEndRenderPass(cb CommandBuffer) {
	call(&sigVoidH, c.cmdEndRenderPass, h(cb))
}

func (c *Commands) CmdBindVertexBuffers(cb CommandBuffer, firstBinding, bindingCount uint32, buffers *Buffer, offsets *uint64) {
	call(&sigVoidHU32PP, c.cmdBindVertexBuffers, h(cb), ptrTo(unsafe.Pointer(&firstBinding)),
		ptrTo(unsafe.Pointer(buffers)), ptrTo(unsafe.Pointer(offsets)))
}

func (c *Commands) CmdBindIndexBuffer(cb CommandBuffer, buffer Buffer, offset uint64, indexType uint32) {
	call(&sigVoidHU32x4, c.cmdBindIndexBuffer, h(cb), h(buffer), ptrTo(unsafe.Pointer(&offset)), ptrTo(unsafe.Pointer(&indexType)))
}

func (c *Commands) CmdSetViewport(cb CommandBuffer, viewport unsafe.Pointer) {
	call(&sigVoidHPtr, c.cmdSetViewport, h(cb), ptrTo(viewport))
}

func (c *Commands) CmdSetScissor(cb CommandBuffer, scissor unsafe.Pointer) {
	call(&sigVoidHPtr, c.cmdSetScissor, h(cb), ptrTo(scissor))
}

func (c *Commands) CmdDraw(cb CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	call(&sigVoidHU32x4, c.cmdDraw, h(cb), ptrTo(unsafe.Pointer(&vertexCount)),
		ptrTo(unsafe.Pointer(&instanceCount)), ptrTo(unsafe.Pointer(&firstVertex)))
}

func (c *Commands) CmdDrawIndexed(cb CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	call(&sigVoidHU32x4, c.cmdDrawIndexed, h(cb), ptrTo(unsafe.Pointer(&indexCount)),
		ptrTo(unsafe.Pointer(&instanceCount)), ptrTo(unsafe.Pointer(&firstIndex)))
}

// CmdClearColorImage wraps vkCmdClearColorImage, used outside a render
// pass to clear a GBuffer color attachment to color before GeometryPass
// records its draws.
func (c *Commands) CmdClearColorImage(cb CommandBuffer, image Image, layout uint32, color *[4]float32, rangeCount uint32, ranges unsafe.Pointer) {
	call(&sigVoidHU32x4, c.cmdClearColorImage, h(cb), h(image),
		ptrTo(unsafe.Pointer(&layout)), ptrTo(unsafe.Pointer(color)))
}

// CmdClearDepthStencilImage wraps vkCmdClearDepthStencilImage.
func (c *Commands) CmdClearDepthStencilImage(cb CommandBuffer, image Image, layout uint32, depth float32, stencil uint32) {
	call(&sigVoidHU32x4, c.cmdClearDepthStencilImage, h(cb), h(image),
		ptrTo(unsafe.Pointer(&layout)), ptrTo(unsafe.Pointer(&depth)))
}
