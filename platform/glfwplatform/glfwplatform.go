// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glfwplatform implements platform.Platform using GLFW.
package glfwplatform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Platform is the GLFW-backed platform.Platform implementation. Window
// must have been created with glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
// since GLFW otherwise tries to set up an OpenGL context.
type Platform struct {
	Window *glfw.Window
}

// New wraps an existing GLFW window.
func New(window *glfw.Window) *Platform {
	return &Platform{Window: window}
}

// VulkanInstanceExtensions returns glfw.GetRequiredInstanceExtensions(),
// the extensions needed to create a VkSurfaceKHR on this platform.
func (p *Platform) VulkanInstanceExtensions() []string {
	return glfw.GetRequiredInstanceExtensions()
}

// CreateVulkanSurface creates a VkSurfaceKHR for p.Window via
// glfw.CreateWindowSurface.
func (p *Platform) CreateVulkanSurface(instance uintptr, _ uintptr) (uintptr, error) {
	surface, err := p.Window.CreateWindowSurface(instance, nil)
	if err != nil {
		return 0, fmt.Errorf("glfwplatform: create vulkan surface: %w", err)
	}
	return uintptr(surface), nil
}
