package vulkan

import (
	"fmt"

	"github.com/ashenforge/render/backend/vulkan/vk"
)

// swapchain wraps a VkSwapchainKHR and its per-image views: BGRA8-sRGB
// format, surface_caps.min_image_count+1 images (clamped to max when the
// surface reports one), mailbox present mode. FIFO is not tried when
// mailbox is unavailable.
type swapchain struct {
	handle vk.SwapchainKHR
	images []vk.Image
	views  []vk.ImageView
	extent vk.Extent2D
}

func newSwapchain(cmds *vk.Commands, device vk.Device, pd vk.PhysicalDevice, surface vk.SurfaceKHR, width, height uint32, old vk.SwapchainKHR) (*swapchain, error) {
	var caps vk.SurfaceCapabilitiesKHR
	if surface != 0 {
		if r := cmds.GetPhysicalDeviceSurfaceCapabilitiesKHR(pd, surface, &caps); r != vk.Success {
			return nil, fmt.Errorf("vkGetPhysicalDeviceSurfaceCapabilitiesKHR failed: %v", r)
		}
	}

	minCount := caps.MinImageCount + 1
	if caps.MaxImageCount > 0 && minCount > caps.MaxImageCount {
		minCount = caps.MaxImageCount
	}
	if minCount == 0 {
		minCount = 2
	}

	extent := vk.Extent2D{Width: width, Height: height}
	if caps.CurrentExtent.Width != 0 || caps.CurrentExtent.Height != 0 {
		extent = caps.CurrentExtent
	}

	createInfo := vk.SwapchainCreateInfoKHR{
		Surface:          surface,
		MinImageCount:    minCount,
		ImageFormat:      vk.FormatB8G8R8A8SRGB,
		ImageColorSpace:  vk.ColorSpaceSRGBNonlinear,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageColorAttachment,
		PresentMode:      vk.PresentModeMailbox,
		OldSwapchain:     old,
	}

	handle, res := cmds.CreateSwapchainKHR(device, ptrOf(&createInfo), nil)
	if res != vk.Success {
		return nil, fmt.Errorf("vkCreateSwapchainKHR failed: %v", res)
	}

	var count uint32
	cmds.GetSwapchainImagesKHR(device, handle, &count, nil)
	images := make([]vk.Image, count)
	if count > 0 {
		cmds.GetSwapchainImagesKHR(device, handle, &count, &images[0])
	}

	views := make([]vk.ImageView, count)
	for i, img := range images {
		view, res := cmds.CreateImageView(device, ptrOf(&img), nil)
		if res != vk.Success {
			for _, v := range views[:i] {
				cmds.DestroyImageView(device, v, nil)
			}
			return nil, fmt.Errorf("vkCreateImageView failed for image %d: %v", i, res)
		}
		views[i] = view
	}

	return &swapchain{handle: handle, images: images, views: views, extent: extent}, nil
}

func (sc *swapchain) destroy(cmds *vk.Commands, device vk.Device) {
	for _, v := range sc.views {
		cmds.DestroyImageView(device, v, nil)
	}
	cmds.DestroySwapchainKHR(device, sc.handle, nil)
}
