// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT
package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// Commands holds every Vulkan function pointer this backend resolves,
// staged exactly like the upstream project's loader: LoadGlobal first
// (functions callable before any instance exists), then LoadInstance once
// vkCreateInstance succeeds, then LoadDevice once vkCreateDevice
// succeeds.
type Commands struct {
	// global
	createInstance           unsafe.Pointer
	enumerateInstanceVersion unsafe.Pointer

	// instance-level
	destroyInstance             unsafe.Pointer
	enumeratePhysicalDevices    unsafe.Pointer
	createDevice                unsafe.Pointer
	destroySurfaceKHR           unsafe.Pointer
	getPhysicalDeviceSurfaceCapabilitiesKHR unsafe.Pointer

	// device-level
	destroyDevice           unsafe.Pointer
	getDeviceQueue          unsafe.Pointer
	deviceWaitIdle          unsafe.Pointer
	createSwapchainKHR      unsafe.Pointer
	destroySwapchainKHR     unsafe.Pointer
	getSwapchainImagesKHR   unsafe.Pointer
	acquireNextImageKHR     unsafe.Pointer
	queuePresentKHR         unsafe.Pointer
	createSemaphore         unsafe.Pointer
	destroySemaphore        unsafe.Pointer
	createFence             unsafe.Pointer
	destroyFence            unsafe.Pointer
	waitForFences           unsafe.Pointer
	resetFences             unsafe.Pointer
	createImageView         unsafe.Pointer
	destroyImageView        unsafe.Pointer
	createCommandPool       unsafe.Pointer
	destroyCommandPool      unsafe.Pointer
	allocateCommandBuffers  unsafe.Pointer
	beginCommandBuffer      unsafe.Pointer
	endCommandBuffer        unsafe.Pointer
	resetCommandBuffer      unsafe.Pointer
	queueSubmit             unsafe.Pointer
	cmdBeginRenderPass      unsafe.Pointer
	cmdEndRenderPass        unsafe.Pointer
	cmdBindVertexBuffers    unsafe.Pointer
	cmdBindIndexBuffer      unsafe.Pointer
	cmdSetViewport          unsafe.Pointer
	cmdSetScissor           unsafe.Pointer
	cmdDraw                 unsafe.Pointer
	cmdDrawIndexed          unsafe.Pointer
	cmdClearColorImage      unsafe.Pointer
	cmdClearDepthStencilImage unsafe.Pointer
}

// NewCommands returns a zero-valued Commands table; call LoadGlobal,
// LoadInstance, and LoadDevice in order to populate it.
func NewCommands() *Commands { return &Commands{} }

// LoadGlobal resolves the handful of entry points callable with no
// VkInstance yet.
func (c *Commands) LoadGlobal() {
	c.createInstance = GetInstanceProcAddr(0, "vkCreateInstance")
	c.enumerateInstanceVersion = GetInstanceProcAddr(0, "vkEnumerateInstanceVersion")
}

// LoadInstance resolves instance-level entry points once instance is
// live.
func (c *Commands) LoadInstance(instance Instance) {
	get := func(name string) unsafe.Pointer { return GetInstanceProcAddr(instance, name) }
	c.destroyInstance = get("vkDestroyInstance")
	c.enumeratePhysicalDevices = get("vkEnumeratePhysicalDevices")
	c.createDevice = get("vkCreateDevice")
	c.destroySurfaceKHR = get("vkDestroySurfaceKHR")
	c.getPhysicalDeviceSurfaceCapabilitiesKHR = get("vkGetPhysicalDeviceSurfaceCapabilitiesKHR")
	SetDeviceProcAddr(instance)
}

// LoadDevice resolves device-level entry points once device is live.
// Prefers vkGetDeviceProcAddr(device, ...) over the instance-level
// resolver, matching upstream's documented fast path.
func (c *Commands) LoadDevice(device Device) {
	get := func(name string) unsafe.Pointer {
		if p := getDeviceProcAddrForDevice(device, name); p != nil {
			return p
		}
		return GetInstanceProcAddr(0, name)
	}
	c.destroyDevice = get("vkDestroyDevice")
	c.getDeviceQueue = get("vkGetDeviceQueue")
	c.deviceWaitIdle = get("vkDeviceWaitIdle")
	c.createSwapchainKHR = get("vkCreateSwapchainKHR")
	c.destroySwapchainKHR = get("vkDestroySwapchainKHR")
	c.getSwapchainImagesKHR = get("vkGetSwapchainImagesKHR")
	c.acquireNextImageKHR = get("vkAcquireNextImageKHR")
	c.queuePresentKHR = get("vkQueuePresentKHR")
	c.createSemaphore = get("vkCreateSemaphore")
	c.destroySemaphore = get("vkDestroySemaphore")
	c.createFence = get("vkCreateFence")
	c.destroyFence = get("vkDestroyFence")
	c.waitForFences = get("vkWaitForFences")
	c.resetFences = get("vkResetFences")
	c.createImageView = get("vkCreateImageView")
	c.destroyImageView = get("vkDestroyImageView")
	c.createCommandPool = get("vkCreateCommandPool")
	c.destroyCommandPool = get("vkDestroyCommandPool")
	c.allocateCommandBuffers = get("vkAllocateCommandBuffers")
	c.beginCommandBuffer = get("vkBeginCommandBuffer")
	c.endCommandBuffer = get("vkEndCommandBuffer")
	c.resetCommandBuffer = get("vkResetCommandBuffer")
	c.queueSubmit = get("vkQueueSubmit")
	c.cmdBeginRenderPass = get("vkCmdBeginRenderPass")
	c.cmdEndRenderPass = get("vkCmdEndRenderPass")
	c.cmdBindVertexBuffers = get("vkCmdBindVertexBuffers")
	c.cmdBindIndexBuffer = get("vkCmdBindIndexBuffer")
	c.cmdSetViewport = get("vkCmdSetViewport")
	c.cmdSetScissor = get("vkCmdSetScissor")
	c.cmdDraw = get("vkCmdDraw")
	c.cmdDrawIndexed = get("vkCmdDrawIndexed")
	c.cmdClearColorImage = get("vkCmdClearColorImage")
	c.cmdClearDepthStencilImage = get("vkCmdClearDepthStencilImage")
}

func getDeviceProcAddrForDevice(device Device, name string) unsafe.Pointer {
	if getDeviceProcAddr == nil {
		return nil
	}
	cname := cString(name)
	namePtr := unsafe.Pointer(&cname[0])
	var result unsafe.Pointer
	// vkGetDeviceProcAddr has the same (Handle, const char*) -> Ptr shape
	// as vkGetInstanceProcAddr, so the same CallInterface applies.
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&namePtr)}
	_ = ffi.CallFunction(&cifGetInstanceProcAddr, getDeviceProcAddr, unsafe.Pointer(&result), args[:])
	return result
}
